package util

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalSize reports the size in cells of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable writes msg on the current line without a newline.
// Calling erase clears that line again.
func PrintErasable(msg string) (erase func()) {
	fmt.Print("\r" + msg)
	return func() {
		fmt.Print("\r\x1b[2K")
	}
}
