package progress

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const fallbackWidth = 80

type terminalCapabilities struct {
	supportsANSI  bool
	terminalWidth int
}

// detectCapabilities inspects f. Calling it more than once is harmless.
func detectCapabilities(f *os.File) terminalCapabilities {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = fallbackWidth
	}

	return terminalCapabilities{
		supportsANSI:  enableANSI(f),
		terminalWidth: width,
	}
}

func clearLine(caps terminalCapabilities) string {
	if caps.supportsANSI {
		return "\033[2K\r"
	}
	return "\r" + strings.Repeat(" ", caps.terminalWidth) + "\r"
}

// truncateToWidth cuts s to width visible runes. Escape sequences do not
// count towards the width, and a reset is appended when s was cut.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	visible := 0
	inEscape := false

	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
		case visible >= width:
			b.WriteString("\033[0m")
			return b.String()
		default:
			visible++
		}
		b.WriteRune(r)
	}
	return b.String()
}
