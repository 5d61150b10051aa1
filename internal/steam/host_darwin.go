//go:build darwin

package steam

import (
	"os"
	"path/filepath"
)

type darwinHost struct{}

func platformHost() Host { return darwinHost{} }

func (darwinHost) SteamRoot() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "Application Support", "Steam")
}

func (darwinHost) DefaultScreenshotsDir() string { return picturesDir() }

func (darwinHost) LibraryRoots(root string) []string {
	return []string{filepath.Join(root, "steamapps")}
}
