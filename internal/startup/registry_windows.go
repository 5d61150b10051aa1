//go:build windows

package startup

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const runKey = `Software\Microsoft\Windows\CurrentVersion\Run`

// RunKey stores the entry under HKCU\...\Run.
type RunKey struct{}

func (RunKey) Location() string { return `HKCU\` + runKey + `\` + AppName }

func (RunKey) Enable(exe string, args ...string) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening run key: %w", err)
	}
	defer k.Close()
	if err := k.SetStringValue(AppName, commandLine(exe, args)); err != nil {
		return fmt.Errorf("writing run value: %w", err)
	}
	return nil
}

func (RunKey) Disable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening run key: %w", err)
	}
	defer k.Close()
	if err := k.DeleteValue(AppName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("deleting run value: %w", err)
	}
	return nil
}

func (RunKey) Enabled() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer k.Close()
	_, _, err = k.GetStringValue(AppName)
	if errors.Is(err, registry.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func platformRegistrar() (Registrar, error) {
	return RunKey{}, nil
}
