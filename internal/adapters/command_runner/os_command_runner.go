package command_runner

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"bumpr/internal/ports"

	"github.com/sirupsen/logrus"
)

// OsCommandRunner executes commands using os/exec. Cancelling the context
// kills the running process.
type OsCommandRunner struct {
	logger *logrus.Logger
}

func ProvideOsCommandRunner(logger *logrus.Logger) *OsCommandRunner {
	return &OsCommandRunner{logger: logger}
}

func (r *OsCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return r.RunInDir(ctx, "", name, args...)
}

func (r *OsCommandRunner) RunInDir(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	started := time.Now()
	output, err := cmd.CombinedOutput()

	fields := logrus.Fields{
		"command":  name,
		"args":     args,
		"duration": time.Since(started).Round(time.Millisecond),
		"exitCode": ExitCode(err),
	}
	if dir != "" {
		fields["dir"] = dir
	}
	entry := r.logger.WithFields(fields)
	if err != nil {
		entry.WithError(err).Debug("command failed")
	} else {
		entry.Debug("command finished")
	}

	return output, err
}

// ExitCode extracts the process exit status from an error returned by Run.
// It is 0 for a nil error and -1 when the process did not exit normally.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
