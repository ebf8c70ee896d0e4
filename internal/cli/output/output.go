package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Stdout and Stderr receive all messages. Colors are only applied when the
// destination is a terminal.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ColorsEnabled reports whether w should receive ANSI colors.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled(w io.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

const (
	reset  = "\033[0m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
)

func style(w io.Writer, codes, text string) string {
	if !ColorsEnabled(w) {
		return text
	}
	return codes + text + reset
}

// PrintSuccess prints a success message with + symbol
func PrintSuccess(message string) {
	fmt.Fprintf(Stdout, "%s\n", style(Stdout, green, SymbolSuccess+" "+message))
}

// PrintError prints an error message with x symbol to stderr
func PrintError(message string) {
	fmt.Fprintf(Stderr, "%s\n", style(Stderr, red, SymbolError+" "+message))
}

// PrintWarning prints a warning message with ! symbol to stderr
func PrintWarning(message string) {
	fmt.Fprintf(Stderr, "%s\n", style(Stderr, yellow, SymbolWarning+" "+message))
}

// PrintInfo prints an info message with * symbol
func PrintInfo(message string) {
	fmt.Fprintf(Stdout, "%s\n", style(Stdout, cyan, SymbolInfo+" "+message))
}

// PrintSecondary prints supplementary information below a step
func PrintSecondary(message string) {
	fmt.Fprintf(Stdout, "  %s %s\n", SymbolArrow, style(Stdout, dim+cyan, message))
}
