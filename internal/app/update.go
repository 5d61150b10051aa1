package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/config"
	ghclient "github.com/blackwell-systems/shotshelf/internal/github"
	"github.com/blackwell-systems/shotshelf/internal/tui"
	"github.com/blackwell-systems/shotshelf/internal/update"
)

func newUpdateCmd() *cobra.Command {
	var (
		checkOnly bool
		tag       string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace this binary with the latest release",
		Example: `  shotshelf update --check
  shotshelf update
  shotshelf update --tag v1.2.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u := newUpdater(cfg, tag)

			st, err := u.Check(ctx)
			if errors.Is(err, update.ErrDevBuild) {
				return fmt.Errorf("%w: install a tagged release to enable updates", err)
			}
			if err != nil {
				return fmt.Errorf("checking for updates: %w", err)
			}
			if !st.Available && tag != "" {
				ok("shotshelf %s is already installed", st.Current)
				return nil
			}
			if !st.Available {
				ok("shotshelf %s is up to date", st.Current)
				return nil
			}

			if tag != "" {
				header("Switching release: %s -> %s", st.Current, st.Latest)
			} else {
				header("Update available: %s -> %s", st.Current, st.Latest)
			}
			if st.Release.HTMLURL != "" {
				printField("release", st.Release.HTMLURL)
			}
			if checkOnly {
				if st.Asset == nil {
					warn("no %s asset in this release", update.AssetName(u.GOOS, u.GOARCH))
				}
				return nil
			}
			if st.Asset == nil {
				return fmt.Errorf("%w: %s", update.ErrNoAsset, update.AssetName(u.GOOS, u.GOARCH))
			}

			exe, err := executablePath()
			if err != nil {
				return err
			}
			label := fmt.Sprintf("Downloading %s (%s)", st.Asset.Name, humanize.Bytes(uint64(st.Asset.Size)))
			if tui.ShouldUseTUI(cmd) {
				err = applyWithProgress(ctx, u, st, exe, label)
			} else {
				fmt.Println(label + " ...")
				err = u.Apply(ctx, st, exe, nil)
			}
			if err != nil {
				return fmt.Errorf("update: %w", err)
			}
			ok("Updated to %s", st.Latest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only report whether an update is available")
	cmd.Flags().StringVar(&tag, "tag", "", "Install the release with this tag instead of the latest")
	return cmd
}

func newUpdater(c *config.Config, tag string) *update.Updater {
	gh := ghclient.New(c.Update.Token, c.Update.APIBase)
	gh.SetUserAgent("shotshelf/" + appVersion)
	return &update.Updater{
		Releases: gh,
		Owner:    c.Update.Owner,
		Repo:     c.Update.Repo,
		Current:  appVersion,
		Tag:      tag,
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		Log:      logger,
	}
}

// applyWithProgress runs the download in the background and draws a progress
// bar until it finishes. Ctrl+C cancels the download.
func applyWithProgress(ctx context.Context, u *update.Updater, st *update.Status, exe, label string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	progressCh := make(chan int64, 50)
	errCh := make(chan error, 1)
	go func() {
		err := u.Apply(ctx, st, exe, func(r io.Reader, size int64) io.Reader {
			return tui.NewProgressReader(r, size, progressCh)
		})
		close(progressCh)
		errCh <- err
	}()

	if err := tui.ShowProgress(label, st.Asset.Size, progressCh); err != nil {
		cancel()
		<-errCh
		return err
	}
	return <-errCh
}
