// Package startup registers the watcher to run at user login.
package startup

import (
	"errors"
	"strings"
)

// AppName names the autostart entry on every platform.
const AppName = "shotshelf"

// ErrUnsupported is returned when the platform has no known autostart
// mechanism.
var ErrUnsupported = errors.New("run at login is not supported on this platform")

// Registrar manages one run-at-login entry.
type Registrar interface {
	// Enable registers exe with args, replacing any existing entry.
	Enable(exe string, args ...string) error
	// Disable removes the entry. Removing a missing entry is not an error.
	Disable() error
	// Enabled reports whether an entry exists.
	Enabled() (bool, error)
	// Location describes where the entry lives, for status output.
	Location() string
}

// New returns the registrar for the running platform.
func New() (Registrar, error) {
	return platformRegistrar()
}

// commandLine joins exe and args, quoting any part with spaces.
func commandLine(exe string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, p := range append([]string{exe}, args...) {
		if strings.ContainsAny(p, " \t\"") {
			p = `"` + strings.ReplaceAll(p, `"`, `\"`) + `"`
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}
