package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/blackwell-systems/shotshelf/internal/steam"
)

// ManifestPath returns <root>/appmanifest_<id>.acf.
func ManifestPath(root string, appID uint64) string {
	return filepath.Join(root, "appmanifest_"+strconv.FormatUint(appID, 10)+".acf")
}

// ParseManifestName returns the value of the first "name" line in an
// appmanifest file.
func ParseManifestName(r io.Reader) (string, error) {
	name, found, err := steam.FirstValue(r, "name")
	switch {
	case errors.Is(err, steam.ErrMalformedLine):
		return "", ErrMalformedManifest
	case err != nil:
		return "", fmt.Errorf("reading manifest: %w", err)
	case !found:
		return "", ErrNoName
	}
	return name, nil
}

// ReadManifestName opens and parses the manifest at path.
func ReadManifestName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ParseManifestName(f)
}

// CountManifests returns how many appmanifest files sit in root.
func CountManifests(root string) int {
	matches, err := filepath.Glob(filepath.Join(root, "appmanifest_*.acf"))
	if err != nil {
		return 0
	}
	return len(matches)
}
