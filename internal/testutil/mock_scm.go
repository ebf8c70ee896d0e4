package testutil

import (
	"bumpr/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.Scm = (*MockScm)(nil)

type MockScm struct {
	mock.Mock
}

func (m *MockScm) CommitFile(filePath string, message string, author ports.Signature) (string, error) {
	args := m.Called(filePath, message, author)
	return args.String(0), args.Error(1)
}

func (m *MockScm) CreateTag(path string, name string, message string, tagger ports.Signature) error {
	args := m.Called(path, name, message, tagger)
	return args.Error(0)
}

func (m *MockScm) Push(path string, remote string, tag string, token string) error {
	args := m.Called(path, remote, tag, token)
	return args.Error(0)
}
