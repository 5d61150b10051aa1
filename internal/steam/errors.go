package steam

import "errors"

var (
	// ErrNoAccount is returned when userdata holds no account directory.
	ErrNoAccount = errors.New("no Steam account found")
	// ErrMalformedLine is returned when a key matches but its quoted value is missing.
	ErrMalformedLine = errors.New("malformed key/value line")
)
