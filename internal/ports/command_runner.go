package ports

import "context"

// CommandRunner executes external commands and returns their combined output.
// The command is killed when ctx is done.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
	RunInDir(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}
