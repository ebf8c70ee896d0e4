package testutil

import (
	"bumpr/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) LoadSettings() (*domain.Settings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(settings *domain.Settings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) SettingsExist() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockSettingsRepository) SettingsPath() string {
	args := m.Called()
	return args.String(0)
}
