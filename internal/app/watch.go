package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/config"
	"github.com/blackwell-systems/shotshelf/internal/steam"
	"github.com/blackwell-systems/shotshelf/internal/util"
	"github.com/blackwell-systems/shotshelf/internal/watch"
)

func newWatchCmd() *cobra.Command {
	var background bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Organize now, then again whenever the directory changes",
		Long: `Runs one pass, then watches the screenshots directory and runs a pass
after every change until interrupted. Only one watcher runs per user.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), background)
		},
	}

	cmd.Flags().BoolVar(&background, "background", false, "Log to file only (default log file when none is configured)")
	return cmd
}

func runWatch(ctx context.Context, background bool) error {
	if background {
		if err := setupLogger(true); err != nil {
			return err
		}
	}

	lock, err := acquireWatchLock(watchLockPath())
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	layout := layoutFor(cfg, steam.NewHost())
	src, err := watch.NewFSNotify(layout.ScreenshotsDir)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	org := organizerFor(cfg, layout, logger, false)
	loop := &watch.Loop{
		Source: src,
		Pass: func(ctx context.Context) error {
			_, err := org.Run(ctx)
			return err
		},
		Log:      logger,
		Debounce: cfg.Watch.Debounce,
	}

	logger.Info("watching", "dir", layout.ScreenshotsDir, "account", layout.Account.ID3(), "libraries", len(layout.Libraries))
	if err := loop.Run(ctx); err != nil {
		return err
	}
	logger.Info("watcher stopped")
	return nil
}

func watchLockPath() string {
	return filepath.Join(config.StateDir(), "watch.lock")
}

// acquireWatchLock takes the per-user watcher lock without blocking.
func acquireWatchLock(path string) (*flock.Flock, error) {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	lk := flock.New(path)
	locked, err := lk.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another shotshelf watcher is already running (lock %s)", path)
	}
	return lk, nil
}
