package terminal

import (
	"fmt"
	"os"
	"strings"

	"bumpr/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads secrets from the controlling terminal. Prompts go to
// stderr so stdout stays clean for scripted use.
type TerminalInput struct {
	stdin *os.File
}

func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{stdin: os.Stdin}
}

// ReadPassword prompts for a secret and returns it, trimmed, without echoing.
func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(t.stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(password)), nil
}

func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(t.stdin.Fd()))
}
