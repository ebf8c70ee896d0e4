package handler

import (
	"context"

	"bumpr/internal/core"
	"bumpr/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

var _ core.Releaser = (*mockReleaser)(nil)

type mockReleaser struct {
	mock.Mock
}

func (m *mockReleaser) Current() (domain.Version, error) {
	args := m.Called()
	return args.Get(0).(domain.Version), args.Error(1)
}

func (m *mockReleaser) Plan() (*domain.ReleasePlan, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReleasePlan), args.Error(1)
}

func (m *mockReleaser) Bump() (*domain.ReleasePlan, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReleasePlan), args.Error(1)
}

// Release records the observer so tests can drive it with Run.
func (m *mockReleaser) Release(_ context.Context, observer core.StepObserver) (*domain.ReleaseResult, error) {
	args := m.Called(observer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReleaseResult), args.Error(1)
}
