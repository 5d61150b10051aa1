//go:build !windows && !darwin

package steam

import (
	"os"
	"path/filepath"
)

type unixHost struct {
	home string
}

func platformHost() Host {
	home, _ := os.UserHomeDir()
	return unixHost{home: home}
}

// SteamRoot prefers the ~/.steam/steam link the client maintains and falls
// back to the XDG data location.
func (h unixHost) SteamRoot() string {
	link := filepath.Join(h.home, ".steam", "steam")
	if isDir(link) {
		return link
	}
	return filepath.Join(h.home, ".local", "share", "Steam")
}

func (unixHost) DefaultScreenshotsDir() string { return picturesDir() }

func (unixHost) LibraryRoots(root string) []string {
	return []string{filepath.Join(root, "steamapps")}
}
