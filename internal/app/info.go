package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/catalog"
	"github.com/blackwell-systems/shotshelf/internal/organizer"
	"github.com/blackwell-systems/shotshelf/internal/steam"
	"github.com/blackwell-systems/shotshelf/internal/tui"
)

type libraryInfo struct {
	Path      string `json:"path"`
	Manifests int    `json:"manifests"`
}

// infoReport is everything `info` knows about the local setup.
type infoReport struct {
	Version        string         `json:"version"`
	ConfigPath     string         `json:"config_path"`
	AccountID      uint64         `json:"account_id"`
	ID3            string         `json:"id3,omitempty"`
	SteamRoot      string         `json:"steam_root"`
	Libraries      []libraryInfo  `json:"libraries"`
	ScreenshotsDir string         `json:"screenshots_dir"`
	Pending        int            `json:"pending"`
	PendingBytes   int64          `json:"pending_bytes"`
	RemoteGames    int            `json:"remote_games"`
	RemoteError    string         `json:"remote_error,omitempty"`
	Games          []catalog.Game `json:"games,omitempty"`
}

func newInfoCmd() *cobra.Command {
	var (
		asJSON    bool
		withGames bool
	)

	cmd := &cobra.Command{
		Use:     "info",
		Aliases: []string{"debug"},
		Short:   "Show the discovered Steam layout and pending screenshots",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := layoutFor(cfg, steam.NewHost())

			var fetcher catalog.LibraryFetcher
			if cfg.Steam.Remote {
				fetcher = catalog.NewProfileClient(cfg.Steam.ProfileBase, cfg.Steam.Timeout)
			}
			report := buildInfo(cmd.Context(), layout, fetcher, withGames)
			report.ConfigPath = cfgPath

			if asJSON {
				data, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				_, err = fmt.Fprintln(os.Stdout, string(data))
				return err
			}
			printInfo(report, tui.ShouldUseTUI(cmd))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&withGames, "games", false, "Include the account's remote game list")
	return cmd
}

// buildInfo gathers the report. fetcher may be nil to skip the remote
// library; a fetch failure is recorded, not returned.
func buildInfo(ctx context.Context, l steam.Layout, fetcher catalog.LibraryFetcher, withGames bool) infoReport {
	r := infoReport{
		Version:        appVersion,
		AccountID:      uint64(l.Account),
		SteamRoot:      l.Root,
		ScreenshotsDir: l.ScreenshotsDir,
	}
	if l.Account != 0 {
		r.ID3 = l.Account.ID3()
	}
	for _, root := range l.Libraries {
		r.Libraries = append(r.Libraries, libraryInfo{Path: root, Manifests: catalog.CountManifests(root)})
	}
	r.Pending, r.PendingBytes = pendingScreenshots(l.ScreenshotsDir)

	if fetcher != nil && l.Account != 0 {
		lib, err := fetcher.FetchLibrary(ctx, l.Account)
		if err != nil {
			r.RemoteError = err.Error()
		} else {
			r.RemoteGames = len(lib.Games)
			if withGames {
				r.Games = append([]catalog.Game(nil), lib.Games...)
				sort.Slice(r.Games, func(i, j int) bool { return r.Games[i].AppID < r.Games[j].AppID })
			}
		}
	}
	return r
}

// pendingScreenshots counts loose files in dir that carry an app ID.
func pendingScreenshots(dir string) (int, int64) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0
	}
	var (
		n    int
		size int64
	)
	for _, e := range entries {
		if !organizer.IsFile(dir, e) {
			continue
		}
		if _, err := organizer.ParseAppID(e.Name()); err != nil {
			continue
		}
		n++
		if fi, err := os.Stat(filepath.Join(dir, e.Name())); err == nil {
			size += fi.Size()
		}
	}
	return n, size
}

func printInfo(r infoReport, fancy bool) {
	title := "shotshelf " + r.Version
	if fancy {
		fmt.Println(tui.Title(title))
	} else {
		header("%s", title)
	}

	printField("config", r.ConfigPath)
	if r.AccountID != 0 {
		printField("account", fmt.Sprintf("%d  %s", r.AccountID, r.ID3))
	} else {
		printField("account", color.YellowString("not found"))
	}
	printField("steam root", r.SteamRoot)
	printField("screenshots", r.ScreenshotsDir)
	printField("pending", fmt.Sprintf("%d (%s)", r.Pending, humanize.Bytes(uint64(r.PendingBytes))))
	switch {
	case r.RemoteError != "":
		printField("remote library", color.RedString(r.RemoteError))
	case r.AccountID == 0:
		printField("remote library", "unavailable without account")
	default:
		printField("remote library", fmt.Sprintf("%s games", humanize.Comma(int64(r.RemoteGames))))
	}

	fmt.Println()
	rows := make([][]string, 0, len(r.Libraries))
	for _, lib := range r.Libraries {
		rows = append(rows, []string{lib.Path, strconv.Itoa(lib.Manifests)})
	}
	fmt.Println(renderTable([]string{"Library", "Manifests"}, rows, []columnAlignment{alignLeft, alignRight}))

	if len(r.Games) > 0 {
		fmt.Println()
		rows = rows[:0]
		for _, g := range r.Games {
			rows = append(rows, []string{strconv.FormatUint(g.AppID, 10), g.Name})
		}
		fmt.Println(renderTable([]string{"App ID", "Name"}, rows, []columnAlignment{alignRight, alignLeft}))
	}

	if fancy && r.Pending > 0 {
		fmt.Println(tui.StyleHelp.Render("Run 'shotshelf run' to sort pending screenshots."))
	}
}

