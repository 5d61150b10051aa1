//go:build windows

package steam

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

const windowsSteamRoot = `C:\Program Files (x86)\Steam`

type windowsHost struct{}

func platformHost() Host { return windowsHost{} }

func (windowsHost) SteamRoot() string { return windowsSteamRoot }

func (windowsHost) DefaultScreenshotsDir() string { return picturesDir() }

// LibraryRoots adds <X>:\SteamLibrary\steamapps for every mounted drive
// other than C: where that directory exists.
func (windowsHost) LibraryRoots(root string) []string {
	roots := []string{filepath.Join(root, "steamapps")}

	drives, err := windows.GetLogicalDrives()
	if err != nil {
		return roots
	}
	for i := 0; i < 26; i++ {
		if drives&(1<<uint(i)) == 0 {
			continue
		}
		letter := string(rune('A' + i))
		if letter == "C" {
			continue
		}
		dir := filepath.Join(letter+`:\`, "SteamLibrary", "steamapps")
		if isDir(dir) {
			roots = append(roots, dir)
		}
	}
	return roots
}
