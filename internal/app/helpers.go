package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/blackwell-systems/shotshelf/internal/catalog"
	"github.com/blackwell-systems/shotshelf/internal/config"
	"github.com/blackwell-systems/shotshelf/internal/organizer"
	"github.com/blackwell-systems/shotshelf/internal/steam"
)

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-16s %s\n", color.CyanString(label+":"), value)
}

// layoutFor resolves the Steam layout on h with config overrides applied.
func layoutFor(c *config.Config, h steam.Host) steam.Layout {
	o := steam.Overrides{
		Root:           c.Steam.Root,
		LibraryDirs:    c.Steam.LibraryDirs,
		ScreenshotsDir: c.ScreenshotsDir,
	}
	if id, ok := c.Steam.Account(); ok {
		o.Account = steam.AccountID(id)
	}
	return steam.Discover(h, o)
}

// resolverFor builds the catalog resolver. Remote lookup needs both the
// config switch and a known account.
func resolverFor(c *config.Config, l steam.Layout, lg *log.Logger) *catalog.Resolver {
	r := &catalog.Resolver{
		Roots:   l.Libraries,
		Account: l.Account,
		Log:     lg,
	}
	if c.Steam.Remote && l.Account != 0 {
		r.Remote = catalog.NewProfileClient(c.Steam.ProfileBase, c.Steam.Timeout)
	}
	return r
}

func organizerFor(c *config.Config, l steam.Layout, lg *log.Logger, dryRun bool) *organizer.Organizer {
	return &organizer.Organizer{
		Dir:      l.ScreenshotsDir,
		Resolver: resolverFor(c, l, lg),
		Log:      lg,
		DryRun:   dryRun,
	}
}

func defaultLogFile() string {
	return filepath.Join(config.StateDir(), "shotshelf.log")
}

// executablePath returns the running binary with symlinks resolved.
func executablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	hdr := make(table.Row, columns)
	for i := range headers {
		hdr[i] = headers[i]
	}
	tw.AppendHeader(hdr)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
