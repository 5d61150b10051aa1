package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// AccountID is the 32-bit account number Steam uses for userdata directories.
// Zero means unknown.
type AccountID uint64

// ID3 renders the account in the [U:1:<id>] form used by profile URLs.
func (a AccountID) ID3() string {
	return fmt.Sprintf("[U:1:%d]", uint64(a))
}

func (a AccountID) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// FindAccountID returns the first subdirectory of <root>/userdata whose name
// is a nonzero integer. Entries are visited in lexical order.
func FindAccountID(root string) (AccountID, error) {
	dir := filepath.Join(root, "userdata")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		id, err := strconv.ParseUint(e.Name(), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		return AccountID(id), nil
	}
	return 0, ErrNoAccount
}
