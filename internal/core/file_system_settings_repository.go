package core

import (
	"fmt"
	"path/filepath"

	"bumpr/internal/core/domain"
	"bumpr/internal/ports"

	"gopkg.in/yaml.v3"
)

type SettingsRepository interface {
	LoadSettings() (*domain.Settings, error)
	SaveSettings(*domain.Settings) error
	SettingsExist() (bool, error)
	SettingsPath() string
}

// FileSystemSettingsRepository reads .bumpr.yaml. Command line overrides from
// GlobalOptions take precedence over the file.
type FileSystemSettingsRepository struct {
	fileSystem ports.FileSystem
	options    domain.GlobalOptions
	settings   *domain.Settings
}

func ProvideFileSystemSettingsRepository(
	fileSystem ports.FileSystem,
	options domain.GlobalOptions,
) *FileSystemSettingsRepository {
	return &FileSystemSettingsRepository{
		fileSystem: fileSystem,
		options:    options,
	}
}

func (r *FileSystemSettingsRepository) SettingsPath() string {
	if r.options.SettingsPath == "" {
		return domain.DefaultSettingsFile
	}
	return r.options.SettingsPath
}

func (r *FileSystemSettingsRepository) SettingsExist() (bool, error) {
	return r.fileSystem.FileExists(r.SettingsPath())
}

func (r *FileSystemSettingsRepository) LoadSettings() (*domain.Settings, error) {
	if r.settings != nil {
		return r.settings, nil
	}

	path := r.SettingsPath()
	var settings domain.Settings

	exists, err := r.fileSystem.FileExists(path)
	if err != nil {
		return nil, err
	}
	switch {
	case exists:
		data, err := r.fileSystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	case r.options.Image == "":
		return nil, fmt.Errorf("settings file %s not found, run 'bumpr initialize' or pass --image", path)
	}

	if r.options.Image != "" {
		settings.Image = r.options.Image
	}
	settings.BaseDir = filepath.Dir(path)
	settings.ApplyDefaults()

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	r.settings = &settings
	return &settings, nil
}

func (r *FileSystemSettingsRepository) SaveSettings(settings *domain.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return r.fileSystem.WriteFile(r.SettingsPath(), data, ports.ReadAllWriteOwner)
}

// ProvideSettings loads the settings once for the release driver.
func ProvideSettings(repository SettingsRepository) (*domain.Settings, error) {
	return repository.LoadSettings()
}
