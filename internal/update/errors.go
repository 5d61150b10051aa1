package update

import "errors"

var (
	// ErrUpToDate is returned when the running version is already the latest.
	ErrUpToDate = errors.New("already up to date")
	// ErrDevBuild is returned for builds without a release version.
	ErrDevBuild = errors.New("development build cannot self-update")
	// ErrNoAsset is returned when the release has no binary for this platform.
	ErrNoAsset = errors.New("release has no asset for this platform")
	// ErrChecksum is returned when the download does not match its .sha256 asset.
	ErrChecksum = errors.New("checksum mismatch")
)
