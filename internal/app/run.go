package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/organizer"
	"github.com/blackwell-systems/shotshelf/internal/steam"
)

func newRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Organize the screenshots directory once",
		Example: `  shotshelf run
  shotshelf run --dry-run --log-level debug
  shotshelf run --dir ~/Pictures/Steam\ Screenshots`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log planned moves without touching any file")
	return cmd
}

// runOnce performs a single pass and reports the summary. Only a setup
// failure (unreadable directory) is an error; skipped files are warnings.
func runOnce(ctx context.Context, dryRun bool) error {
	layout := layoutFor(cfg, steam.NewHost())
	if layout.Account == 0 {
		logger.Debug("no Steam account found; remote lookup disabled", "root", layout.Root)
	}

	res, err := organizerFor(cfg, layout, logger, dryRun).Run(ctx)
	if err != nil {
		return err
	}

	if dryRun {
		ok("%s (dry run)", res.Summary())
	} else {
		ok("%s", res.Summary())
	}
	reportSkipped(res)
	return nil
}

func reportSkipped(res organizer.Result) {
	if n := res.Count(organizer.StatusUnresolved); n > 0 {
		warn("%d screenshot(s) matched no installed or owned game", n)
	}
	if n := res.Count(organizer.StatusConflict); n > 0 {
		warn("%d screenshot(s) left in place: destination already exists", n)
	}
	if n := res.Count(organizer.StatusMkdirFailed) + res.Count(organizer.StatusMoveFailed); n > 0 {
		warn("%d screenshot(s) could not be moved (see log)", n)
	}
}
