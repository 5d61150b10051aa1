//go:build !windows && !darwin

package startup

import (
	"fmt"
	"os"
	"path/filepath"
)

func platformRegistrar() (Registrar, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return NewXDG(filepath.Join(dir, "autostart")), nil
}
