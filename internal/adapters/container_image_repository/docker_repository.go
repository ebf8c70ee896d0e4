package container_image_repository

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"bumpr/internal/core/domain"
	"bumpr/internal/ports"
)

// DockerRepository builds and pushes images through the docker CLI.
type DockerRepository struct {
	commandRunner ports.CommandRunner
}

func ProvideDockerRepository(commandRunner ports.CommandRunner) *DockerRepository {
	return &DockerRepository{
		commandRunner: commandRunner,
	}
}

// BuildImage runs a single buildx build for the requested platform, applies
// every tag and loads the result into the local image store.
func (d *DockerRepository) BuildImage(ctx context.Context, build ports.ImageBuild) error {
	args := []string{"buildx", "build", "--platform", build.Platform}
	for _, tag := range build.Tags {
		args = append(args, "-t", tag.String())
	}
	args = append(args, "--load")
	if build.DockerfilePath != "" {
		args = append(args, "-f", build.DockerfilePath)
	}

	// Add context path as the last argument
	args = append(args, build.ContextPath)

	output, err := d.commandRunner.Run(ctx, "docker", args...)
	if err != nil {
		return &domain.BuildError{
			Tags:   build.Tags,
			Status: exitStatus(err),
			Output: strings.TrimSpace(string(output)),
			Err:    cause(ctx, err),
		}
	}

	return nil
}

// PushImage pushes one tag to the registry named by the image reference.
func (d *DockerRepository) PushImage(ctx context.Context, reference domain.ImageReference) error {
	output, err := d.commandRunner.Run(ctx, "docker", "push", reference.String())
	if err != nil {
		return &domain.PushError{
			Reference: reference,
			Status:    exitStatus(err),
			Output:    strings.TrimSpace(string(output)),
			Err:       cause(ctx, err),
		}
	}

	return nil
}

// exitStatus is the process exit code, or 1 when the process never exited
// normally (not found, killed on timeout).
func exitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

func cause(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w (%v)", ctxErr, err)
	}
	return err
}

var _ ports.ContainerImageRepository = (*DockerRepository)(nil)
