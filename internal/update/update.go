package update

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/shotshelf/internal/github"
	"github.com/blackwell-systems/shotshelf/internal/logging"
	"github.com/blackwell-systems/shotshelf/internal/util"
)

// DevVersion is the version string of unreleased builds.
const DevVersion = "dev"

// Releases is the subset of the GitHub client the updater needs.
type Releases interface {
	LatestRelease(ctx context.Context, owner, repo string) (*github.Release, error)
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.Release, error)
	DownloadAsset(ctx context.Context, a *github.Asset) (io.ReadCloser, int64, error)
}

// WrapFunc lets the caller observe a download, e.g. to drive a progress bar.
// size is -1 when unknown.
type WrapFunc func(r io.Reader, size int64) io.Reader

// Updater replaces the running binary with the latest release, or with the
// release tagged Tag when one is pinned.
type Updater struct {
	Releases Releases
	Owner    string
	Repo     string
	Current  string
	Tag      string
	GOOS     string
	GOARCH   string
	Log      *log.Logger
}

// Status is the result of a release check.
type Status struct {
	Current   string
	Latest    string
	Available bool
	Release   *github.Release
	Asset     *github.Asset
}

// AssetName is the release asset name for a platform.
func AssetName(goos, goarch string) string {
	name := fmt.Sprintf("shotshelf_%s_%s", goos, goarch)
	if goos == "windows" {
		name += ".exe"
	}
	return name
}

func (u *Updater) assetName() string {
	goos, goarch := u.GOOS, u.GOARCH
	if goos == "" {
		goos = runtime.GOOS
	}
	if goarch == "" {
		goarch = runtime.GOARCH
	}
	return AssetName(goos, goarch)
}

// Check looks up the target release and compares it with Current. The latest
// release is available only when it is newer; a pinned tag is available
// whenever it differs from Current, so it can also downgrade.
func (u *Updater) Check(ctx context.Context) (*Status, error) {
	if u.Current == "" || u.Current == DevVersion {
		return nil, ErrDevBuild
	}
	var (
		rel *github.Release
		err error
	)
	if u.Tag != "" {
		rel, err = u.Releases.GetReleaseByTag(ctx, u.Owner, u.Repo, u.Tag)
	} else {
		rel, err = u.Releases.LatestRelease(ctx, u.Owner, u.Repo)
	}
	if err != nil {
		return nil, err
	}
	available := Newer(rel.TagName, u.Current)
	if u.Tag != "" {
		available = !Same(rel.TagName, u.Current)
	}
	st := &Status{
		Current:   strings.TrimPrefix(u.Current, "v"),
		Latest:    rel.Version(),
		Available: available,
		Release:   rel,
		Asset:     rel.FindAsset(u.assetName()),
	}
	return st, nil
}

// Apply downloads the release binary next to exe, verifies it when a
// checksum asset is published, and swaps it in.
func (u *Updater) Apply(ctx context.Context, st *Status, exe string, wrap WrapFunc) error {
	logger := logging.OrDiscard(u.Log)
	if !st.Available {
		return ErrUpToDate
	}
	if st.Asset == nil {
		return fmt.Errorf("%w: %s", ErrNoAsset, u.assetName())
	}

	tmp, digest, err := u.download(ctx, st.Asset, filepath.Dir(exe), wrap)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp)
		}
	}()

	if sum := st.Release.FindAsset(st.Asset.Name + ".sha256"); sum != nil {
		if err := u.verify(ctx, sum, digest); err != nil {
			return err
		}
		logger.Debug("checksum verified", "asset", st.Asset.Name)
	}

	if err := Replace(exe, tmp); err != nil {
		return err
	}
	committed = true
	logger.Info("updated", "from", st.Current, "to", st.Latest)
	return nil
}

// download writes the asset to a temp file in dir so the final rename stays
// on one filesystem. It returns the path and the sha256 of what was written.
func (u *Updater) download(ctx context.Context, a *github.Asset, dir string, wrap WrapFunc) (string, string, error) {
	rc, size, err := u.Releases.DownloadAsset(ctx, a)
	if err != nil {
		return "", "", err
	}
	defer func() { _ = rc.Close() }()

	f, err := os.CreateTemp(dir, ".shotshelf-update-*")
	if err != nil {
		return "", "", fmt.Errorf("creating temp file: %w", err)
	}
	hr := util.NewHashReader(rc)
	var src io.Reader = hr
	if wrap != nil {
		src = wrap(hr, size)
	}
	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", "", fmt.Errorf("downloading %s: %w", a.Name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", "", err
	}
	if size > 0 && hr.Size() != size {
		_ = os.Remove(f.Name())
		return "", "", fmt.Errorf("downloading %s: got %d bytes, want %d", a.Name, hr.Size(), size)
	}
	return f.Name(), hr.SHA256(), nil
}

// verify compares digest against the first hex field of a sha256sum-style
// asset.
func (u *Updater) verify(ctx context.Context, sum *github.Asset, digest string) error {
	rc, _, err := u.Releases.DownloadAsset(ctx, sum)
	if err != nil {
		return fmt.Errorf("fetching checksum: %w", err)
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(io.LimitReader(rc, 4096))
	var want string
	if sc.Scan() {
		if fields := strings.Fields(sc.Text()); len(fields) > 0 {
			want = strings.ToLower(fields[0])
		}
	}
	if want == "" {
		return fmt.Errorf("%w: empty checksum file", ErrChecksum)
	}
	if digest != want {
		return fmt.Errorf("%w: got %s, want %s", ErrChecksum, digest, want)
	}
	return nil
}

// Replace marks newPath executable and moves it over exe, keeping exe.bak
// until the swap succeeds.
// A running Windows binary can be renamed but not deleted, so the backup
// removal is best effort.
func Replace(exe, newPath string) error {
	if err := os.Chmod(newPath, 0755); err != nil {
		return fmt.Errorf("chmod %s: %w", newPath, err)
	}
	bak := exe + ".bak"
	if err := os.Remove(bak); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale backup: %w", err)
	}
	if err := os.Rename(exe, bak); err != nil {
		return fmt.Errorf("backing up %s: %w", exe, err)
	}
	if err := os.Rename(newPath, exe); err != nil {
		_ = os.Rename(bak, exe)
		return fmt.Errorf("installing new binary: %w", err)
	}
	_ = os.Remove(bak)
	return nil
}
