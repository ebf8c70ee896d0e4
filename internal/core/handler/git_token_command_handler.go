package handler

import (
	"errors"
	"fmt"

	"bumpr/internal/cli/output"
	"bumpr/internal/core"
	"bumpr/internal/ports"
)

type GitTokenCommandHandler struct {
	terminalInput ports.TerminalInput
	keyring       ports.Keyring
}

func ProvideGitTokenCommandHandler(
	terminalInput ports.TerminalInput,
	keyring ports.Keyring,
) GitTokenCommandHandler {
	return GitTokenCommandHandler{
		terminalInput: terminalInput,
		keyring:       keyring,
	}
}

// HandleSet prompts for a token without echo and stores it in the OS keyring.
func (h *GitTokenCommandHandler) HandleSet() error {
	if !h.terminalInput.IsTerminal() {
		return errors.New("git-token set needs an interactive terminal, refusing to read a token from a pipe")
	}

	token, err := h.terminalInput.ReadPassword("Git token: ")
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("token must not be empty")
	}

	if err := h.keyring.SetKey(core.GitTokenKey, token); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Stored git token in the OS keyring (%s)", core.GitTokenKey))
	return nil
}

// HandleStatus reports whether a token is stored, never the token itself.
func (h *GitTokenCommandHandler) HandleStatus() error {
	hasToken, err := h.keyring.HasKey(core.GitTokenKey)
	if err != nil {
		return err
	}

	if hasToken {
		output.PrintSuccess("A git token is stored in the OS keyring")
	} else {
		output.PrintWarning("No git token stored, pushes use the transport defaults")
	}
	return nil
}
