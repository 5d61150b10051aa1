package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/config"
	"github.com/blackwell-systems/shotshelf/internal/console"
	"github.com/blackwell-systems/shotshelf/internal/logging"
	"github.com/blackwell-systems/shotshelf/internal/util"
)

var (
	cfg       *config.Config
	cfgPath   string
	logger    = logging.Discard()
	logCloser io.Closer

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagLogLevel      string
	flagDir           string
)

var rootCmd = &cobra.Command{
	Use:   "shotshelf",
	Short: "Sort Steam screenshots into per-game folders",
	Long: `shotshelf moves Steam screenshots named <appid>_<timestamp>.<ext> into
a folder named after the game, using installed app manifests first and
the account's public game list as a fallback.

Run 'shotshelf' from a terminal to organize once. Started without a
console (double-click, login item) it keeps watching in the background.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if console.Attached() {
			return runOnce(cmd.Context(), false)
		}
		if err := console.Detach(); err != nil {
			logger.Debug("detaching console", "err", err)
		}
		return runWatch(cmd.Context(), true)
	},
}

// Execute is the entry point called from main.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable progress bars and boxed output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: <user config dir>/shotshelf/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Screenshots directory (skips discovery)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		cfgPath = config.ResolvePath(flagConfig)
		c, err := config.Load(cfgPath)
		if err != nil {
			// config init must be able to replace a broken file.
			if cmd.Name() != "init" {
				return fmt.Errorf("loading config: %w", err)
			}
			d := config.Default()
			c = &d
		}
		applyFlags(c)
		cfg = c

		return setupLogger(false)
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newWatchCmd(),
		newInfoCmd(),
		newVersionCmd(),
		newUpdateCmd(),
		newStartupCmd(),
		newConfigCmd(),
	)
}

// applyFlags layers command-line overrides on top of the loaded config.
func applyFlags(c *config.Config) {
	if flagDir != "" {
		c.ScreenshotsDir = config.ExpandHome(flagDir)
	}
	if flagLogLevel != "" {
		c.Log.Level = flagLogLevel
	}
}

// setupLogger (re)builds the package logger from cfg. A background process
// has nobody reading stderr, so it logs to a file only.
func setupLogger(background bool) error {
	opts := logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}
	if background {
		opts.Console = io.Discard
		if opts.File == "" {
			opts.File = defaultLogFile()
		}
	}

	l, closer, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	closeLog()
	logger, logCloser = l, closer
	return nil
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}
