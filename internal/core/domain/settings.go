package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

const (
	DefaultSettingsFile  = ".bumpr.yaml"
	DefaultConfigFile    = "docker-compose.yml"
	DefaultBuildContext  = "."
	DefaultPlatform      = "linux/amd64"
	DefaultLatestTag     = "latest"
	DefaultBuildTimeout  = 30 * time.Minute
	DefaultPushTimeout   = 10 * time.Minute
	DefaultGitRemote     = "origin"
	DefaultCommitMessage = "Release {{.Version}}"
	DefaultTagName       = "v{{.Version}}"
	DefaultAuthorName    = "bumpr"
	DefaultAuthorEmail   = "bumpr@localhost"
)

// Settings describes one releasable image. Relative paths are resolved
// against BaseDir, the directory holding the settings file.
type Settings struct {
	Image      string      `yaml:"image"`
	File       string      `yaml:"file"`
	Context    string      `yaml:"context"`
	Dockerfile string      `yaml:"dockerfile,omitempty"`
	Platform   string      `yaml:"platform"`
	LatestTag  string      `yaml:"latestTag"`
	VerifyLoad *bool       `yaml:"verifyLoad,omitempty"`
	Timeouts   Timeouts    `yaml:"timeouts"`
	Git        GitSettings `yaml:"git"`
	BaseDir    string      `yaml:"-"`
}

type Timeouts struct {
	Build time.Duration `yaml:"build"`
	Push  time.Duration `yaml:"push"`
}

type GitSettings struct {
	Commit        bool   `yaml:"commit"`
	Tag           bool   `yaml:"tag"`
	Push          bool   `yaml:"push"`
	Remote        string `yaml:"remote,omitempty"`
	CommitMessage string `yaml:"commitMessage,omitempty"`
	TagName       string `yaml:"tagName,omitempty"`
	AuthorName    string `yaml:"authorName,omitempty"`
	AuthorEmail   string `yaml:"authorEmail,omitempty"`
}

func CreateDefaultSettings() Settings {
	verifyLoad := true
	return Settings{
		Image:      "julianh2o/myalpr",
		File:       DefaultConfigFile,
		Context:    DefaultBuildContext,
		Platform:   DefaultPlatform,
		LatestTag:  DefaultLatestTag,
		VerifyLoad: &verifyLoad,
		Timeouts: Timeouts{
			Build: DefaultBuildTimeout,
			Push:  DefaultPushTimeout,
		},
		Git: GitSettings{
			Remote:        DefaultGitRemote,
			CommitMessage: DefaultCommitMessage,
			TagName:       DefaultTagName,
			AuthorName:    DefaultAuthorName,
			AuthorEmail:   DefaultAuthorEmail,
		},
	}
}

// ApplyDefaults fills every unset field with its default value.
func (s *Settings) ApplyDefaults() {
	defaults := CreateDefaultSettings()
	if s.File == "" {
		s.File = defaults.File
	}
	if s.Context == "" {
		s.Context = defaults.Context
	}
	if s.Platform == "" {
		s.Platform = defaults.Platform
	}
	if s.LatestTag == "" {
		s.LatestTag = defaults.LatestTag
	}
	if s.VerifyLoad == nil {
		s.VerifyLoad = defaults.VerifyLoad
	}
	if s.Timeouts.Build == 0 {
		s.Timeouts.Build = defaults.Timeouts.Build
	}
	if s.Timeouts.Push == 0 {
		s.Timeouts.Push = defaults.Timeouts.Push
	}
	if s.Git.Remote == "" {
		s.Git.Remote = defaults.Git.Remote
	}
	if s.Git.CommitMessage == "" {
		s.Git.CommitMessage = defaults.Git.CommitMessage
	}
	if s.Git.TagName == "" {
		s.Git.TagName = defaults.Git.TagName
	}
	if s.Git.AuthorName == "" {
		s.Git.AuthorName = defaults.Git.AuthorName
	}
	if s.Git.AuthorEmail == "" {
		s.Git.AuthorEmail = defaults.Git.AuthorEmail
	}
}

// Validate reports every problem at once.
func (s *Settings) Validate() error {
	var errs []error

	if s.Image == "" {
		errs = append(errs, fmt.Errorf("image must be set"))
	} else if err := ValidateImageName(s.Image); err != nil {
		errs = append(errs, err)
	} else if _, err := NewImageReference(s.Image, s.LatestTag); err != nil {
		errs = append(errs, fmt.Errorf("latestTag: %w", err))
	}
	if strings.TrimSpace(s.File) == "" {
		errs = append(errs, fmt.Errorf("file must be set"))
	}
	if strings.TrimSpace(s.Context) == "" {
		errs = append(errs, fmt.Errorf("context must be set"))
	}
	if strings.Count(s.Platform, "/") < 1 {
		errs = append(errs, fmt.Errorf("platform %q must have the form os/arch", s.Platform))
	}
	if s.Timeouts.Build < 0 {
		errs = append(errs, fmt.Errorf("timeouts.build must not be negative"))
	}
	if s.Timeouts.Push < 0 {
		errs = append(errs, fmt.Errorf("timeouts.push must not be negative"))
	}
	if (s.Git.Tag || s.Git.Push) && !s.Git.Commit {
		errs = append(errs, fmt.Errorf("git.tag and git.push require git.commit"))
	}
	if s.Git.Commit && strings.TrimSpace(s.Git.CommitMessage) == "" {
		errs = append(errs, fmt.Errorf("git.commitMessage must be set when git.commit is enabled"))
	}
	if s.Git.Tag && strings.TrimSpace(s.Git.TagName) == "" {
		errs = append(errs, fmt.Errorf("git.tagName must be set when git.tag is enabled"))
	}

	return utilerrors.NewAggregate(errs)
}

func (s *Settings) ShouldVerifyLoad() bool {
	return s.VerifyLoad == nil || *s.VerifyLoad
}

// ResolvePath anchors a settings-relative path at BaseDir.
func (s *Settings) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.BaseDir, path)
}

func (s *Settings) ConfigFilePath() string {
	return s.ResolvePath(s.File)
}

func (s *Settings) BuildContextPath() string {
	return s.ResolvePath(s.Context)
}

func (s *Settings) DockerfilePath() string {
	return s.ResolvePath(s.Dockerfile)
}
