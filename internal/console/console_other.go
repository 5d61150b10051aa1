//go:build !windows

package console

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Attached reports whether stdin is a terminal.
func Attached() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Detach is a no-op outside Windows; a service manager or autostart entry
// already runs us without a terminal.
func Detach() error { return nil }
