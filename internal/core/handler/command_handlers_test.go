package handler

import (
	"bytes"
	"errors"
	"testing"

	"bumpr/internal/core"
	"bumpr/internal/core/domain"
	"bumpr/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBumpCommandHandler_Handle(t *testing.T) {
	releaser := new(mockReleaser)
	releaser.On("Bump").Return(samplePlan(t), nil)
	sut := ProvideBumpCommandHandler(releaser)

	err := sut.Handle()

	require.NoError(t, err)
	releaser.AssertExpectations(t)
}

func TestBumpCommandHandler_HandleReturnsWriteError(t *testing.T) {
	writeErr := &domain.WriteError{Path: "docker-compose.yml", Err: errors.New("read-only file system")}
	releaser := new(mockReleaser)
	releaser.On("Bump").Return(samplePlan(t), writeErr)
	sut := ProvideBumpCommandHandler(releaser)

	err := sut.Handle()

	assert.ErrorIs(t, err, writeErr)
}

func TestCurrentCommandHandler_HandlePrintsBareVersion(t *testing.T) {
	current, err := domain.ParseVersion("1.2.3")
	require.NoError(t, err)
	releaser := new(mockReleaser)
	releaser.On("Current").Return(current, nil)
	var stdout bytes.Buffer
	sut := ProvideCurrentCommandHandler(releaser)
	sut.stdout = &stdout

	err = sut.Handle()

	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", stdout.String())
}

func TestCurrentCommandHandler_HandleReturnsError(t *testing.T) {
	notFound := &domain.ConfigNotFoundError{Path: "docker-compose.yml", Image: "julianh2o/myalpr"}
	releaser := new(mockReleaser)
	releaser.On("Current").Return(domain.Version{}, notFound)
	var stdout bytes.Buffer
	sut := ProvideCurrentCommandHandler(releaser)
	sut.stdout = &stdout

	err := sut.Handle()

	assert.ErrorIs(t, err, notFound)
	assert.Empty(t, stdout.String())
}

func TestInitializeCommandHandler_HandleReturnsErrorIfSettingsExist(t *testing.T) {
	settingsRepository := new(testutil.MockSettingsRepository)
	settingsRepository.On("SettingsPath").Return(".bumpr.yaml")
	settingsRepository.On("SettingsExist").Return(true, nil)
	sut := ProvideInitializeCommandHandler(settingsRepository)

	err := sut.Handle("")

	assert.EqualError(t, err, "settings file .bumpr.yaml already exists")
	settingsRepository.AssertNotCalled(t, "SaveSettings", mock.Anything)
}

func TestInitializeCommandHandler_HandleWritesDefaultSettings(t *testing.T) {
	settingsRepository := new(testutil.MockSettingsRepository)
	settingsRepository.On("SettingsPath").Return(".bumpr.yaml")
	settingsRepository.On("SettingsExist").Return(false, nil)
	settingsRepository.On("SaveSettings", mock.MatchedBy(func(settings *domain.Settings) bool {
		return settings.Image == "julianh2o/myalpr" && settings.File == domain.DefaultConfigFile
	})).Return(nil)
	sut := ProvideInitializeCommandHandler(settingsRepository)

	err := sut.Handle("")

	require.NoError(t, err)
	settingsRepository.AssertExpectations(t)
}

func TestInitializeCommandHandler_HandleUsesImageFlag(t *testing.T) {
	settingsRepository := new(testutil.MockSettingsRepository)
	settingsRepository.On("SettingsPath").Return(".bumpr.yaml")
	settingsRepository.On("SettingsExist").Return(false, nil)
	settingsRepository.On("SaveSettings", mock.MatchedBy(func(settings *domain.Settings) bool {
		return settings.Image == "ghcr.io/acme/alpr"
	})).Return(nil)
	sut := ProvideInitializeCommandHandler(settingsRepository)

	err := sut.Handle("ghcr.io/acme/alpr")

	require.NoError(t, err)
	settingsRepository.AssertExpectations(t)
}

func TestInitializeCommandHandler_HandleRejectsInvalidImage(t *testing.T) {
	settingsRepository := new(testutil.MockSettingsRepository)
	settingsRepository.On("SettingsPath").Return(".bumpr.yaml")
	settingsRepository.On("SettingsExist").Return(false, nil)
	sut := ProvideInitializeCommandHandler(settingsRepository)

	err := sut.Handle("Not A Valid Image")

	require.Error(t, err)
	settingsRepository.AssertNotCalled(t, "SaveSettings", mock.Anything)
}

func TestGitTokenCommandHandler_HandleSetRefusesNonTerminal(t *testing.T) {
	terminalInput := new(testutil.MockTerminalInput)
	keyring := new(testutil.MockKeyring)
	terminalInput.On("IsTerminal").Return(false)
	sut := ProvideGitTokenCommandHandler(terminalInput, keyring)

	err := sut.HandleSet()

	require.Error(t, err)
	terminalInput.AssertNotCalled(t, "ReadPassword", mock.Anything)
	keyring.AssertNotCalled(t, "SetKey", mock.Anything, mock.Anything)
}

func TestGitTokenCommandHandler_HandleSetStoresToken(t *testing.T) {
	terminalInput := new(testutil.MockTerminalInput)
	keyring := new(testutil.MockKeyring)
	terminalInput.On("IsTerminal").Return(true)
	terminalInput.On("ReadPassword", "Git token: ").Return("ghp_example", nil)
	keyring.On("SetKey", core.GitTokenKey, "ghp_example").Return(nil)
	sut := ProvideGitTokenCommandHandler(terminalInput, keyring)

	err := sut.HandleSet()

	require.NoError(t, err)
	keyring.AssertExpectations(t)
}

func TestGitTokenCommandHandler_HandleSetRejectsEmptyToken(t *testing.T) {
	terminalInput := new(testutil.MockTerminalInput)
	keyring := new(testutil.MockKeyring)
	terminalInput.On("IsTerminal").Return(true)
	terminalInput.On("ReadPassword", mock.Anything).Return("", nil)
	sut := ProvideGitTokenCommandHandler(terminalInput, keyring)

	err := sut.HandleSet()

	assert.EqualError(t, err, "token must not be empty")
	keyring.AssertNotCalled(t, "SetKey", mock.Anything, mock.Anything)
}

func TestGitTokenCommandHandler_HandleStatus(t *testing.T) {
	terminalInput := new(testutil.MockTerminalInput)
	keyring := new(testutil.MockKeyring)
	keyring.On("HasKey", core.GitTokenKey).Return(false, errors.New("no secret service"))
	sut := ProvideGitTokenCommandHandler(terminalInput, keyring)

	err := sut.HandleStatus()

	assert.EqualError(t, err, "no secret service")
	keyring.AssertNotCalled(t, "GetKey", mock.Anything)
}
