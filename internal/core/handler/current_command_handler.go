package handler

import (
	"fmt"
	"io"
	"os"

	"bumpr/internal/core"
)

type CurrentCommandHandler struct {
	releaser core.Releaser
	stdout   io.Writer
}

func ProvideCurrentCommandHandler(releaser core.Releaser) CurrentCommandHandler {
	return CurrentCommandHandler{
		releaser: releaser,
		stdout:   os.Stdout,
	}
}

// Handle prints the bare released version so it can be captured by scripts.
func (h *CurrentCommandHandler) Handle() error {
	current, err := h.releaser.Current()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(h.stdout, current)
	return err
}
