package handler

import (
	"fmt"

	"bumpr/internal/cli/output"
	"bumpr/internal/core"
)

type BumpCommandHandler struct {
	releaser core.Releaser
}

func ProvideBumpCommandHandler(releaser core.Releaser) BumpCommandHandler {
	return BumpCommandHandler{
		releaser: releaser,
	}
}

// Handle rewrites the configuration file with the next patch version without
// building or pushing.
func (h *BumpCommandHandler) Handle() error {
	plan, err := h.releaser.Bump()
	if err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Bumped %s in %s: %s -> %s", plan.Image, plan.ConfigFile, plan.CurrentVersion, plan.NextVersion))
	return nil
}
