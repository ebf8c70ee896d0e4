package testutil

import (
	"context"

	"bumpr/internal/core/domain"
	"bumpr/internal/ports"

	"github.com/stretchr/testify/mock"
)

// Compile-time interface compliance check
var _ ports.ContainerImageRepository = (*MockContainerImageRepository)(nil)
var _ ports.ImageStore = (*MockImageStore)(nil)

type MockContainerImageRepository struct {
	mock.Mock
}

func (m *MockContainerImageRepository) BuildImage(_ context.Context, build ports.ImageBuild) error {
	args := m.Called(build)
	return args.Error(0)
}

func (m *MockContainerImageRepository) PushImage(_ context.Context, reference domain.ImageReference) error {
	args := m.Called(reference)
	return args.Error(0)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) HasImage(_ context.Context, reference domain.ImageReference) (bool, error) {
	args := m.Called(reference)
	return args.Bool(0), args.Error(1)
}
