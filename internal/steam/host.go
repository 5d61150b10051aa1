package steam

import (
	"os"
	"path/filepath"
)

// Host describes where Steam keeps its files on this platform.
type Host interface {
	// SteamRoot is the Steam installation directory.
	SteamRoot() string
	// LibraryRoots lists steamapps directories known without reading Steam's
	// own config, primary first.
	LibraryRoots(root string) []string
	// DefaultScreenshotsDir is used when Steam's config names no directory.
	DefaultScreenshotsDir() string
}

// NewHost returns the Host for the running platform.
func NewHost() Host {
	return platformHost()
}

func picturesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("Pictures", "Steam Screenshots")
	}
	return filepath.Join(home, "Pictures", "Steam Screenshots")
}
