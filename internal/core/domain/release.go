package domain

// StepKind names one stage of a release run.
type StepKind string

const (
	StepRead    StepKind = "read configuration"
	StepParse   StepKind = "parse version"
	StepRewrite StepKind = "rewrite configuration"
	StepBuild   StepKind = "build image"
	StepPush    StepKind = "push image"
	StepGit     StepKind = "publish git"
)

// Step is a stage together with what it acts on (a file, an image reference, a tag).
type Step struct {
	Kind   StepKind
	Target string
}

func (s Step) String() string {
	if s.Target == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + " " + s.Target
}

// ReleasePlan is everything derived from the configuration file before
// anything is modified.
type ReleasePlan struct {
	Image          string
	ConfigFile     string
	CurrentVersion Version
	NextVersion    Version
	VersionTag     ImageReference
	LatestTag      ImageReference
	Platform       string
	BuildContext   string
	Dockerfile     string
	// Steps lists the side-effecting stages in execution order.
	Steps []Step
}

// References returns the version tag followed by the floating tag.
func (p *ReleasePlan) References() []ImageReference {
	return []ImageReference{p.VersionTag, p.LatestTag}
}

type ReleaseResult struct {
	Plan      *ReleasePlan
	Pushed    []ImageReference
	GitCommit string
	GitTag    string
}

// GlobalOptions carries the persistent command line flags into the injectors.
type GlobalOptions struct {
	SettingsPath string
	Image        string
	Verbose      bool
}
