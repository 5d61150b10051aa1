package catalog

import "errors"

var (
	// ErrNoName is returned when a manifest has no "name" line.
	ErrNoName = errors.New("manifest has no name field")
	// ErrMalformedManifest is returned when the "name" line has no quoted value.
	ErrMalformedManifest = errors.New("malformed manifest name line")
	// ErrPrivateProfile is returned when the profile does not expose its games.
	ErrPrivateProfile = errors.New("profile games list is not public")
)
