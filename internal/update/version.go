package update

import (
	"strings"

	"golang.org/x/mod/semver"
)

// canonical turns a release tag or build version into semver form with the
// "v" prefix. It returns "" when v is not a semantic version.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// Newer reports whether latest is a higher semantic version than current.
// Pre-releases sort below their release. An unparsable latest is never
// newer; an unparsable current is older than any valid latest.
func Newer(latest, current string) bool {
	l := canonical(latest)
	if l == "" {
		return false
	}
	c := canonical(current)
	if c == "" {
		return true
	}
	return semver.Compare(l, c) > 0
}

// Same reports whether a and b name the same semantic version. Build
// metadata is ignored. Unparsable versions compare by their trimmed text.
func Same(a, b string) bool {
	ca, cb := canonical(a), canonical(b)
	if ca == "" || cb == "" {
		return strings.TrimPrefix(strings.TrimSpace(a), "v") == strings.TrimPrefix(strings.TrimSpace(b), "v")
	}
	return semver.Compare(ca, cb) == 0
}
