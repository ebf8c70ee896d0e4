package core

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"bumpr/internal/core/domain"
	"bumpr/internal/ports"
	"bumpr/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFileSystemSettingsRepository_LoadSettingsAppliesDefaults(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile("deploy/.bumpr.yaml", []byte("image: julianh2o/myalpr\nfile: compose.yml\ntimeouts:\n  build: 5m\n"), ports.ReadWrite))

	sut := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{SettingsPath: "deploy/.bumpr.yaml"})

	settings, err := sut.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "julianh2o/myalpr", settings.Image)
	assert.Equal(t, "deploy", settings.BaseDir)
	assert.Equal(t, filepath.Join("deploy", "compose.yml"), settings.ConfigFilePath())
	assert.Equal(t, "deploy", settings.BuildContextPath())
	assert.Equal(t, "linux/amd64", settings.Platform)
	assert.Equal(t, 5*time.Minute, settings.Timeouts.Build)
	assert.Equal(t, domain.DefaultPushTimeout, settings.Timeouts.Push)
}

func TestFileSystemSettingsRepository_LoadSettingsIsCached(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", ".bumpr.yaml").Return(true, nil).Once()
	fileSystem.On("ReadFile", ".bumpr.yaml").Return([]byte("image: julianh2o/myalpr\n"), nil).Once()

	sut := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{})

	first, err := sut.LoadSettings()
	require.NoError(t, err)
	second, err := sut.LoadSettings()
	require.NoError(t, err)

	assert.Same(t, first, second)
	fileSystem.AssertExpectations(t)
}

func TestFileSystemSettingsRepository_ImageFlagOverridesFile(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.WriteFile(".bumpr.yaml", []byte("image: julianh2o/myalpr\n"), ports.ReadWrite))

	sut := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{Image: "ghcr.io/acme/alpr"})

	settings, err := sut.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "ghcr.io/acme/alpr", settings.Image)
}

func TestFileSystemSettingsRepository_MissingFileWithImageFlagUsesDefaults(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)

	sut := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{Image: "julianh2o/myalpr"})

	settings, err := sut.LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfigFile, settings.File)
	assert.Equal(t, ".", settings.Context)
}

func TestFileSystemSettingsRepository_MissingFileWithoutImageFails(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)

	sut := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{})

	_, err := sut.LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bumpr initialize")
}

func TestFileSystemSettingsRepository_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{"invalid yaml", "image: [unclosed\n", "failed to parse settings file"},
		{"missing image", "file: compose.yml\n", "image must be set"},
		{"git tag without commit", "image: julianh2o/myalpr\ngit:\n  tag: true\n", "require git.commit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileSystem := testutil.NewTestFileSystem(t)
			require.NoError(t, fileSystem.WriteFile(".bumpr.yaml", []byte(tt.content), ports.ReadWrite))

			sut := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{})

			_, err := sut.LoadSettings()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestFileSystemSettingsRepository_SaveSettingsRoundTrips(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{})
	settings := domain.CreateDefaultSettings()

	require.NoError(t, sut.SaveSettings(&settings))
	exists, err := sut.SettingsExist()
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{}).LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, settings.Image, loaded.Image)
	assert.Equal(t, settings.Timeouts, loaded.Timeouts)
	assert.Equal(t, settings.Git, loaded.Git)
}

func TestFileSystemSettingsRepository_FileExistsError(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", mock.Anything).Return(false, errors.New("permission denied"))

	sut := ProvideFileSystemSettingsRepository(fileSystem, domain.GlobalOptions{})

	_, err := sut.LoadSettings()

	assert.EqualError(t, err, "permission denied")
}
