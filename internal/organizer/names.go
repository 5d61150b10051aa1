package organizer

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseAppID reads the decimal app ID that prefixes a screenshot file name,
// up to the first underscore.
func ParseAppID(name string) (uint64, error) {
	prefix, _, _ := strings.Cut(name, "_")
	id, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("no app ID prefix in %q", name)
	}
	return id, nil
}

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// DirName turns a display name into a single safe path component that is
// valid on every platform Steam runs on. ok is false when nothing usable
// remains.
func DirName(display string) (name string, ok bool) {
	s := norm.NFC.String(display)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r < 0x20 || r == 0x7f:
			b.WriteRune('_')
		case strings.ContainsRune(`<>:"/\|?*`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	name = strings.TrimSpace(b.String())
	name = strings.TrimRight(name, ". ")
	if name == "" || strings.Trim(name, "_") == "" {
		return "", false
	}

	base, _, _ := strings.Cut(name, ".")
	if reservedNames[strings.ToUpper(base)] {
		name = "_" + name
	}
	return name, true
}
