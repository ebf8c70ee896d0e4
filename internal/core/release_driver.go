package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bumpr/internal/core/domain"
	"bumpr/internal/ports"

	"github.com/sirupsen/logrus"
)

// GitTokenKey is the keyring entry holding the token used for git pushes.
const GitTokenKey = "git-token"

// StepObserver is notified as the release progresses. The driver itself never
// writes to the terminal.
type StepObserver interface {
	PlanReady(plan *domain.ReleasePlan)
	StepStarted(step domain.Step)
	StepCompleted(step domain.Step, err error)
}

// Releaser is the contract the command handlers depend on.
type Releaser interface {
	Current() (domain.Version, error)
	Plan() (*domain.ReleasePlan, error)
	Bump() (*domain.ReleasePlan, error)
	Release(ctx context.Context, observer StepObserver) (*domain.ReleaseResult, error)
}

// ReleaseDriver bumps the patch version of one image in its configuration
// file, then builds and pushes the image. Every step is fail-fast and nothing
// is rolled back: after a failed build or push the file keeps the new version.
type ReleaseDriver struct {
	settings   *domain.Settings
	fileSystem ports.FileSystem
	images     ports.ContainerImageRepository
	imageStore ports.ImageStore
	scm        ports.Scm
	templater  ports.Templater
	keyring    ports.Keyring
	logger     *logrus.Logger
}

func ProvideReleaseDriver(
	settings *domain.Settings,
	fileSystem ports.FileSystem,
	images ports.ContainerImageRepository,
	imageStore ports.ImageStore,
	scm ports.Scm,
	templater ports.Templater,
	keyring ports.Keyring,
	logger *logrus.Logger,
) *ReleaseDriver {
	return &ReleaseDriver{
		settings:   settings,
		fileSystem: fileSystem,
		images:     images,
		imageStore: imageStore,
		scm:        scm,
		templater:  templater,
		keyring:    keyring,
		logger:     logger,
	}
}

var _ Releaser = (*ReleaseDriver)(nil)

type releaseAction struct {
	step domain.Step
	run  func(ctx context.Context) error
}

// release holds the state of a single run.
type release struct {
	plan    *domain.ReleasePlan
	content []byte
	line    ImageLine
	result  *domain.ReleaseResult
}

// Current reads the released version from the configuration file.
func (d *ReleaseDriver) Current() (domain.Version, error) {
	_, _, current, err := d.readCurrent()
	return current, err
}

// Plan reads and parses the configuration file without modifying anything.
func (d *ReleaseDriver) Plan() (*domain.ReleasePlan, error) {
	r, err := d.prepare()
	if err != nil {
		return nil, err
	}
	return r.plan, nil
}

// Bump rewrites the configuration file with the next patch version and stops.
func (d *ReleaseDriver) Bump() (*domain.ReleasePlan, error) {
	r, err := d.prepare()
	if err != nil {
		return nil, err
	}
	if err := d.rewrite(r); err != nil {
		return r.plan, err
	}
	return r.plan, nil
}

func (d *ReleaseDriver) Release(ctx context.Context, observer StepObserver) (*domain.ReleaseResult, error) {
	r, err := d.prepare()
	if err != nil {
		return nil, err
	}
	observer.PlanReady(r.plan)

	for _, action := range d.actions(r) {
		if err := ctx.Err(); err != nil {
			return r.result, err
		}

		observer.StepStarted(action.step)
		started := time.Now()
		err := action.run(ctx)
		observer.StepCompleted(action.step, err)

		entry := d.logger.WithFields(logrus.Fields{
			"step":     action.step.String(),
			"duration": time.Since(started).Round(time.Millisecond),
		})
		if err != nil {
			entry.WithError(err).Debug("release step failed")
			return r.result, err
		}
		entry.Debug("release step completed")
	}

	return r.result, nil
}

func (d *ReleaseDriver) readCurrent() ([]byte, ImageLine, domain.Version, error) {
	path := d.settings.ConfigFilePath()
	image := d.settings.Image

	content, err := d.fileSystem.ReadFile(path)
	if err != nil {
		return nil, ImageLine{}, domain.Version{}, &domain.ConfigNotFoundError{Path: path, Image: image, Err: err}
	}

	line, found := FindImageLine(content, image)
	if !found {
		return nil, ImageLine{}, domain.Version{}, &domain.ConfigNotFoundError{Path: path, Image: image}
	}

	current, err := domain.ParseVersion(line.Tag)
	if err != nil {
		return nil, ImageLine{}, domain.Version{}, err
	}
	return content, line, current, nil
}

func (d *ReleaseDriver) prepare() (*release, error) {
	path := d.settings.ConfigFilePath()
	image := d.settings.Image

	content, line, current, err := d.readCurrent()
	if err != nil {
		return nil, err
	}
	next, err := current.NextPatch()
	if err != nil {
		return nil, err
	}

	versionTag, err := domain.NewImageReference(image, next.String())
	if err != nil {
		return nil, err
	}
	latestTag, err := domain.NewImageReference(image, d.settings.LatestTag)
	if err != nil {
		return nil, err
	}

	plan := &domain.ReleasePlan{
		Image:          image,
		ConfigFile:     path,
		CurrentVersion: current,
		NextVersion:    next,
		VersionTag:     versionTag,
		LatestTag:      latestTag,
		Platform:       d.settings.Platform,
		BuildContext:   d.settings.BuildContextPath(),
		Dockerfile:     d.settings.DockerfilePath(),
	}
	r := &release{
		plan:    plan,
		content: content,
		line:    line,
		result:  &domain.ReleaseResult{Plan: plan},
	}
	for _, action := range d.actions(r) {
		plan.Steps = append(plan.Steps, action.step)
	}

	d.logger.WithFields(logrus.Fields{
		"file":    path,
		"current": current.String(),
		"next":    next.String(),
	}).Debug("release planned")

	return r, nil
}

func (d *ReleaseDriver) actions(r *release) []releaseAction {
	plan := r.plan
	actions := []releaseAction{
		{
			step: domain.Step{Kind: domain.StepRewrite, Target: plan.ConfigFile},
			run:  func(context.Context) error { return d.rewrite(r) },
		},
		{
			step: domain.Step{Kind: domain.StepBuild, Target: plan.VersionTag.String()},
			run:  func(ctx context.Context) error { return d.build(ctx, plan) },
		},
	}

	for _, reference := range plan.References() {
		actions = append(actions, releaseAction{
			step: domain.Step{Kind: domain.StepPush, Target: reference.String()},
			run:  func(ctx context.Context) error { return d.push(ctx, r, reference) },
		})
	}

	git := d.settings.Git
	if git.Commit {
		actions = append(actions, releaseAction{
			step: domain.Step{Kind: domain.StepGit, Target: "commit"},
			run:  func(context.Context) error { return d.commit(r) },
		})
	}
	if git.Tag {
		actions = append(actions, releaseAction{
			step: domain.Step{Kind: domain.StepGit, Target: "tag"},
			run:  func(context.Context) error { return d.tag(r) },
		})
	}
	if git.Push {
		actions = append(actions, releaseAction{
			step: domain.Step{Kind: domain.StepGit, Target: "push " + git.Remote},
			run:  func(context.Context) error { return d.pushGit(r) },
		})
	}

	return actions
}

func (d *ReleaseDriver) rewrite(r *release) error {
	updated := ReplaceImageTag(r.content, r.line, r.plan.Image, r.plan.NextVersion.String())
	if err := d.fileSystem.ReplaceFile(r.plan.ConfigFile, updated); err != nil {
		return &domain.WriteError{Path: r.plan.ConfigFile, Err: err}
	}
	return nil
}

func (d *ReleaseDriver) build(ctx context.Context, plan *domain.ReleasePlan) error {
	ctx, cancel := withTimeout(ctx, d.settings.Timeouts.Build)
	defer cancel()

	tags := plan.References()
	err := d.images.BuildImage(ctx, ports.ImageBuild{
		ContextPath:    plan.BuildContext,
		DockerfilePath: plan.Dockerfile,
		Platform:       plan.Platform,
		Tags:           tags,
	})
	if err != nil {
		var buildErr *domain.BuildError
		if !errors.As(err, &buildErr) {
			err = &domain.BuildError{Tags: tags, Status: 1, Err: err}
		}
		return err
	}

	if !d.settings.ShouldVerifyLoad() {
		return nil
	}
	for _, tag := range tags {
		loaded, err := d.imageStore.HasImage(ctx, tag)
		if err != nil {
			return &domain.BuildError{Tags: tags, Status: 1, Err: fmt.Errorf("failed to inspect local image store: %w", err)}
		}
		if !loaded {
			return &domain.BuildError{Tags: tags, Status: 1, Err: fmt.Errorf("%s was not loaded into the local image store", tag)}
		}
	}
	return nil
}

func (d *ReleaseDriver) push(ctx context.Context, r *release, reference domain.ImageReference) error {
	ctx, cancel := withTimeout(ctx, d.settings.Timeouts.Push)
	defer cancel()

	if err := d.images.PushImage(ctx, reference); err != nil {
		var pushErr *domain.PushError
		if !errors.As(err, &pushErr) {
			err = &domain.PushError{Reference: reference, Status: 1, Err: err}
		}
		return err
	}
	r.result.Pushed = append(r.result.Pushed, reference)
	return nil
}

func (d *ReleaseDriver) templateValues(plan *domain.ReleasePlan) map[string]interface{} {
	return map[string]interface{}{
		"Version":  plan.NextVersion.String(),
		"Previous": plan.CurrentVersion.String(),
		"Image":    plan.Image,
		"Tag":      plan.VersionTag.String(),
	}
}

func (d *ReleaseDriver) signature() ports.Signature {
	return ports.Signature{Name: d.settings.Git.AuthorName, Email: d.settings.Git.AuthorEmail}
}

func (d *ReleaseDriver) commitMessage(plan *domain.ReleasePlan) (string, error) {
	return d.templater.Render(d.settings.Git.CommitMessage, "commit-message", d.templateValues(plan))
}

func (d *ReleaseDriver) commit(r *release) error {
	message, err := d.commitMessage(r.plan)
	if err != nil {
		return &domain.GitError{Operation: "render commit message", Err: err}
	}
	hash, err := d.scm.CommitFile(r.plan.ConfigFile, message, d.signature())
	if err != nil {
		return &domain.GitError{Operation: "commit " + r.plan.ConfigFile, Err: err}
	}
	r.result.GitCommit = hash
	return nil
}

func (d *ReleaseDriver) tag(r *release) error {
	name, err := d.templater.Render(d.settings.Git.TagName, "tag-name", d.templateValues(r.plan))
	if err != nil {
		return &domain.GitError{Operation: "render tag name", Err: err}
	}
	message, err := d.commitMessage(r.plan)
	if err != nil {
		return &domain.GitError{Operation: "render commit message", Err: err}
	}
	if err := d.scm.CreateTag(r.plan.ConfigFile, name, message, d.signature()); err != nil {
		return &domain.GitError{Operation: "create tag " + name, Err: err}
	}
	r.result.GitTag = name
	return nil
}

func (d *ReleaseDriver) pushGit(r *release) error {
	remote := d.settings.Git.Remote
	if err := d.scm.Push(r.plan.ConfigFile, remote, r.result.GitTag, d.gitToken()); err != nil {
		return &domain.GitError{Operation: "push to " + remote, Err: err}
	}
	return nil
}

// gitToken returns the stored token, or "" when none is stored or the
// keyring is unavailable.
func (d *ReleaseDriver) gitToken() string {
	hasToken, err := d.keyring.HasKey(GitTokenKey)
	if err != nil {
		d.logger.WithError(err).Debug("keyring unavailable, pushing without token")
		return ""
	}
	if !hasToken {
		return ""
	}
	token, err := d.keyring.GetKey(GitTokenKey)
	if err != nil {
		d.logger.WithError(err).Debug("failed to read git token from keyring")
		return ""
	}
	return token
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
