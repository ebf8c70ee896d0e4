package image_store

import (
	"context"
	"fmt"
	"log/slog"

	"bumpr/internal/core/domain"
	"bumpr/internal/ports"

	"github.com/containerd/errdefs"
	"github.com/docker/go-sdk/client"
	"github.com/sirupsen/logrus"
)

type inspectFunc func(ctx context.Context, reference string) error

// DockerImageStore inspects the local image store through the Docker Engine
// API. The client is created on first use, so commands that never verify a
// build do not need a reachable daemon.
type DockerImageStore struct {
	logger  *logrus.Logger
	inspect inspectFunc
}

func ProvideDockerImageStore(logger *logrus.Logger) *DockerImageStore {
	return &DockerImageStore{logger: logger}
}

func (s *DockerImageStore) HasImage(ctx context.Context, reference domain.ImageReference) (bool, error) {
	if s.inspect == nil {
		if err := s.connect(ctx); err != nil {
			return false, err
		}
	}

	err := s.inspect(ctx, reference.String())
	if err == nil {
		return true, nil
	}
	if errdefs.IsNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to inspect image %s: %w", reference, err)
}

func (s *DockerImageStore) connect(ctx context.Context) error {
	level := slog.LevelWarn
	if s.logger.IsLevelEnabled(logrus.DebugLevel) {
		level = slog.LevelDebug
	}

	dockerClient, err := client.New(
		ctx,
		client.WithLogger(slog.New(slog.NewTextHandler(s.logger.Out, &slog.HandlerOptions{Level: level}))),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to docker: %w", err)
	}

	s.inspect = func(ctx context.Context, reference string) error {
		_, err := dockerClient.ImageInspect(ctx, reference)
		return err
	}
	return nil
}

var _ ports.ImageStore = (*DockerImageStore)(nil)
