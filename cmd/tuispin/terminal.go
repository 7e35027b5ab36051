package main

import (
	"os"

	"golang.org/x/term"
)

const terminalWidthBackup = 80

// terminalWidth returns the column count of f, or a fallback when f is not a
// terminal.
func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
