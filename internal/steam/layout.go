package steam

import (
	"os"
	"path/filepath"
)

const screenshotPathKey = "InGameOverlayScreenshotSaveUncompressedPath"

// Overrides carries user-configured values that replace discovery.
type Overrides struct {
	Root           string
	LibraryDirs    []string
	Account        AccountID
	ScreenshotsDir string
}

// Layout is the resolved set of paths and identity for one run.
type Layout struct {
	Root           string
	Libraries      []string
	Account        AccountID
	ScreenshotsDir string
}

// Discover resolves the Steam layout on h, applying o on top. A missing
// account is not an error; Layout.Account stays zero.
func Discover(h Host, o Overrides) Layout {
	l := Layout{Root: o.Root, Account: o.Account}
	if l.Root == "" {
		l.Root = h.SteamRoot()
	}
	if l.Account == 0 {
		if id, err := FindAccountID(l.Root); err == nil {
			l.Account = id
		}
	}
	l.Libraries = LibraryRoots(h, l.Root, o.LibraryDirs)
	l.ScreenshotsDir = o.ScreenshotsDir
	if l.ScreenshotsDir == "" {
		l.ScreenshotsDir = ScreenshotsDir(l.Root, l.Account, h.DefaultScreenshotsDir())
	}
	return l
}

// LibraryRoots merges the host's known roots, the libraries listed in
// steamapps/libraryfolders.vdf, and extra. Order is kept, duplicates dropped.
func LibraryRoots(h Host, root string, extra []string) []string {
	var roots []string
	seen := map[string]bool{}
	add := func(dir string) {
		if dir == "" {
			return
		}
		key := filepath.Clean(dir)
		if seen[key] {
			return
		}
		seen[key] = true
		roots = append(roots, key)
	}

	for _, dir := range h.LibraryRoots(root) {
		add(dir)
	}
	for _, dir := range libraryFolders(filepath.Join(root, "steamapps", "libraryfolders.vdf")) {
		apps := filepath.Join(dir, "steamapps")
		if isDir(apps) {
			add(apps)
		}
	}
	for _, dir := range extra {
		add(dir)
	}
	return roots
}

// libraryFolders lists the library paths in libraryfolders.vdf. Current
// files hold a section per library under "libraryfolders/<n>" with a "path"
// leaf; older ones map "<n>" straight to the path.
func libraryFolders(path string) []string {
	kv, err := readKeyValues(path)
	if err != nil {
		return nil
	}
	folders, ok := kv.section("libraryfolders")
	if !ok {
		return nil
	}
	var paths []string
	for _, v := range folders.numbered() {
		var p string
		switch entry := v.(type) {
		case string:
			p = entry
		case map[string]interface{}:
			p, _ = keyValues(entry).str("path")
		}
		if p != "" {
			paths = append(paths, UnescapePath(p))
		}
	}
	return paths
}

// ScreenshotsDir returns the uncompressed screenshot folder configured under
// UserLocalConfigStore/system in the account's localconfig.vdf, or fallback.
func ScreenshotsDir(root string, account AccountID, fallback string) string {
	if account == 0 {
		return fallback
	}
	path := filepath.Join(root, "userdata", account.String(), "config", "localconfig.vdf")
	kv, err := readKeyValues(path)
	if err != nil {
		return fallback
	}
	system, ok := kv.section("UserLocalConfigStore", "system")
	if !ok {
		return fallback
	}
	v, _ := system.str(screenshotPathKey)
	if v == "" {
		return fallback
	}
	dir, err := filepath.Abs(UnescapePath(v))
	if err != nil {
		return fallback
	}
	return dir
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}
