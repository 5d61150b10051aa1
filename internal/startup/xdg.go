package startup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/shotshelf/internal/util"
)

// XDG writes a freedesktop autostart entry.
type XDG struct {
	Dir string // usually ~/.config/autostart
}

// NewXDG returns an XDG registrar rooted at dir.
func NewXDG(dir string) *XDG { return &XDG{Dir: dir} }

func (x *XDG) path() string { return filepath.Join(x.Dir, AppName+".desktop") }

func (x *XDG) Location() string { return x.path() }

func (x *XDG) Enable(exe string, args ...string) error {
	if err := util.EnsureDir(x.Dir); err != nil {
		return fmt.Errorf("creating %s: %w", x.Dir, err)
	}
	entry := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Comment=Sort Steam screenshots into per-game folders
Exec=%s
Terminal=false
X-GNOME-Autostart-enabled=true
`, AppName, commandLine(exe, args))
	if err := os.WriteFile(x.path(), []byte(entry), 0644); err != nil {
		return fmt.Errorf("writing autostart entry: %w", err)
	}
	return nil
}

func (x *XDG) Disable() error {
	if err := os.Remove(x.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing autostart entry: %w", err)
	}
	return nil
}

func (x *XDG) Enabled() (bool, error) {
	return util.Exists(x.path()), nil
}
