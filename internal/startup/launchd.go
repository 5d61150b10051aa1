package startup

import (
	"fmt"
	"os"
	"path/filepath"

	"howett.net/plist"

	"github.com/blackwell-systems/shotshelf/internal/util"
)

const launchdLabel = "com.blackwell-systems." + AppName

// launchdJob is the subset of launchd.plist(5) keys the agent sets.
type launchdJob struct {
	Label            string   `plist:"Label"`
	ProgramArguments []string `plist:"ProgramArguments"`
	RunAtLoad        bool     `plist:"RunAtLoad"`
}

// LaunchAgent writes a per-user launchd agent plist.
type LaunchAgent struct {
	Dir string // usually ~/Library/LaunchAgents
}

// NewLaunchAgent returns a launchd registrar rooted at dir.
func NewLaunchAgent(dir string) *LaunchAgent { return &LaunchAgent{Dir: dir} }

func (l *LaunchAgent) path() string { return filepath.Join(l.Dir, launchdLabel+".plist") }

func (l *LaunchAgent) Location() string { return l.path() }

func (l *LaunchAgent) Enable(exe string, args ...string) error {
	if err := util.EnsureDir(l.Dir); err != nil {
		return fmt.Errorf("creating %s: %w", l.Dir, err)
	}

	data, err := plist.MarshalIndent(launchdJob{
		Label:            launchdLabel,
		ProgramArguments: append([]string{exe}, args...),
		RunAtLoad:        true,
	}, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("encoding launch agent: %w", err)
	}
	if err := os.WriteFile(l.path(), data, 0644); err != nil {
		return fmt.Errorf("writing launch agent: %w", err)
	}
	return nil
}

func (l *LaunchAgent) Disable() error {
	if err := os.Remove(l.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing launch agent: %w", err)
	}
	return nil
}

func (l *LaunchAgent) Enabled() (bool, error) {
	return util.Exists(l.path()), nil
}
