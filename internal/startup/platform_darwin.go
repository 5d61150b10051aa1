//go:build darwin

package startup

import (
	"fmt"
	"os"
	"path/filepath"
)

func platformRegistrar() (Registrar, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return NewLaunchAgent(filepath.Join(home, "Library", "LaunchAgents")), nil
}
