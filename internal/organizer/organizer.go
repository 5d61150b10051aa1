package organizer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/shotshelf/internal/catalog"
	"github.com/blackwell-systems/shotshelf/internal/logging"
	"github.com/blackwell-systems/shotshelf/internal/util"
)

// Organizer files loose screenshots in Dir into per-game subdirectories.
type Organizer struct {
	Dir      string
	Resolver *catalog.Resolver
	Log      *log.Logger
	// DryRun logs the planned moves without touching the filesystem.
	DryRun bool
}

// Run performs one pass with a fresh resolution state.
func (o *Organizer) Run(ctx context.Context) (Result, error) {
	return o.Organize(ctx, o.Resolver.NewPass())
}

// Organize performs one pass over the files directly inside Dir. Per-file
// failures are recorded in the Result; only failing to list Dir, or ctx
// cancellation, returns an error.
func (o *Organizer) Organize(ctx context.Context, pass *catalog.Pass) (Result, error) {
	logger := logging.OrDiscard(o.Log)

	entries, err := os.ReadDir(o.Dir)
	if err != nil {
		return Result{}, fmt.Errorf("listing screenshots in %s: %w", o.Dir, err)
	}

	var res Result
	for _, e := range entries {
		if !IsFile(o.Dir, e) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Considered++
		res.add(o.file(ctx, pass, logger, e.Name()))
	}

	logger.Info(res.Summary(), "dir", o.Dir)
	return res, nil
}

// IsFile reports whether the entry e of dir is a regular file. Symlinks are
// followed; a link to a file counts and is moved as a link, while dangling
// links and links to directories do not.
func IsFile(dir string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.Mode().IsRegular()
}

func (o *Organizer) file(ctx context.Context, pass *catalog.Pass, logger *log.Logger, name string) Outcome {
	out := Outcome{File: name}

	id, err := ParseAppID(name)
	if err != nil {
		out.Status, out.Err = StatusInvalidName, err
		logger.Warn("skipping file without app ID", "file", name)
		return out
	}
	out.AppID = id

	game, source, ok := pass.Resolve(ctx, id)
	if !ok {
		out.Status = StatusUnresolved
		logger.Info("no game found", "file", name, "app_id", id)
		return out
	}
	out.Game = game.Name

	dirName, ok := DirName(game.Name)
	if !ok {
		out.Status = StatusUnresolved
		logger.Warn("game name unusable as directory", "file", name, "app_id", id, "game", game.Name)
		return out
	}

	destDir := filepath.Join(o.Dir, dirName)
	dest := filepath.Join(destDir, name)
	out.Dest = dest

	if o.DryRun {
		out.Status = StatusMoved
		logger.Info("would move", "file", name, "game", game.Name, "source", source)
		return out
	}

	if err := util.EnsureDir(destDir); err != nil {
		out.Status, out.Err = StatusMkdirFailed, err
		logger.Error("creating game directory", "dir", destDir, "err", err)
		return out
	}
	if util.Exists(dest) {
		out.Status = StatusConflict
		logger.Warn("destination exists, leaving file", "file", name, "dest", dest)
		return out
	}
	if err := util.MoveFile(filepath.Join(o.Dir, name), dest); err != nil {
		out.Status, out.Err = StatusMoveFailed, err
		logger.Error("moving screenshot", "file", name, "dest", dest, "err", err)
		return out
	}

	out.Status = StatusMoved
	logger.Info("moved", "file", name, "game", game.Name, "source", source)
	return out
}
