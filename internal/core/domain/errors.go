package domain

import (
	"fmt"
	"strings"
)

// ConfigNotFoundError is returned when the configuration file cannot be read
// or holds no image line for the configured name.
type ConfigNotFoundError struct {
	Path  string
	Image string
	Err   error
}

func (e *ConfigNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to read configuration file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("no line matching 'image: %s:<version>' found in %s", e.Image, e.Path)
}

func (e *ConfigNotFoundError) Unwrap() error { return e.Err }

func (e *ConfigNotFoundError) Step() StepKind { return StepRead }

// VersionFormatError is returned when a tag is not exactly major.minor.patch.
type VersionFormatError struct {
	Value string
	Err   error
}

func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Value, e.Err)
}

func (e *VersionFormatError) Unwrap() error { return e.Err }

func (e *VersionFormatError) Step() StepKind { return StepParse }

// WriteError is returned when the rewritten configuration could not be
// persisted. The original file is left untouched.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write configuration file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Step() StepKind { return StepRewrite }

// BuildError carries the build toolchain's exit status and captured output.
type BuildError struct {
	Tags   []ImageReference
	Status int
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	tags := make([]string, len(e.Tags))
	for i, tag := range e.Tags {
		tags[i] = tag.String()
	}
	msg := fmt.Sprintf("failed to build image %s: %v", strings.Join(tags, ", "), e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *BuildError) Unwrap() error { return e.Err }

func (e *BuildError) Step() StepKind { return StepBuild }

func (e *BuildError) ExitCode() int { return e.Status }

// PushError names the tag whose push failed.
type PushError struct {
	Reference ImageReference
	Status    int
	Output    string
	Err       error
}

func (e *PushError) Error() string {
	msg := fmt.Sprintf("failed to push image %s: %v", e.Reference, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *PushError) Unwrap() error { return e.Err }

func (e *PushError) Step() StepKind { return StepPush }

func (e *PushError) ExitCode() int { return e.Status }

// GitError is returned when committing, tagging or pushing the release to git fails.
type GitError struct {
	Operation string
	Err       error
}

func (e *GitError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *GitError) Unwrap() error { return e.Err }

func (e *GitError) Step() StepKind { return StepGit }
