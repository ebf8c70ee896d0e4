package ports

import (
	"context"

	"bumpr/internal/core/domain"
)

// ImageBuild describes one multi-tag build for a single platform.
type ImageBuild struct {
	ContextPath    string
	DockerfilePath string
	Platform       string
	Tags           []domain.ImageReference
}

type ContainerImageRepository interface {
	// BuildImage builds and loads the result into the local image store.
	BuildImage(ctx context.Context, build ImageBuild) error
	PushImage(ctx context.Context, reference domain.ImageReference) error
}

// ImageStore answers questions about the local image store.
type ImageStore interface {
	HasImage(ctx context.Context, reference domain.ImageReference) (bool, error)
}
