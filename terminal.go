package asciiart

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the width in character cells of the terminal on f.
// It returns 0 when f is not a terminal or the size cannot be queried.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width < 0 {
		return 0
	}
	return width
}
