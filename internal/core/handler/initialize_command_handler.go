package handler

import (
	"fmt"

	"bumpr/internal/cli/output"
	"bumpr/internal/core"
	"bumpr/internal/core/domain"
)

type InitializeCommandHandler struct {
	settingsRepository core.SettingsRepository
}

func ProvideInitializeCommandHandler(
	settingsRepository core.SettingsRepository,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		settingsRepository: settingsRepository,
	}
}

// Handle writes a sample settings file. image replaces the sample image name
// when set.
func (h *InitializeCommandHandler) Handle(image string) error {
	path := h.settingsRepository.SettingsPath()
	settingsExist, err := h.settingsRepository.SettingsExist()
	if err != nil {
		return err
	}
	if settingsExist {
		return fmt.Errorf("settings file %s already exists", path)
	}

	settings := domain.CreateDefaultSettings()
	if image != "" {
		if err := domain.ValidateImageName(image); err != nil {
			return err
		}
		settings.Image = image
	}

	err = h.settingsRepository.SaveSettings(&settings)
	if err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Wrote %s", path))
	output.PrintSecondary(fmt.Sprintf("releases %s from %s", settings.Image, settings.File))
	return nil
}
