// Package terminal queries the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Interactive reports whether stdin is attached to a terminal
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Viewport returns the number of map columns and rows that fit beside a
// panel of the given width and above a footer of the given height.
// Both are at least 1.
func Viewport(panelWidth, footerHeight int) (cols, rows int) {
	w, h := GetSize()
	cols = max(w-panelWidth, 1)
	rows = max(h-footerHeight, 1)
	return cols, rows
}
