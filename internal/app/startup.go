package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/startup"
)

func newStartupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "startup",
		Short: "Manage running the watcher at login",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Start 'shotshelf watch' at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := startup.New()
				if err != nil {
					return err
				}
				exe, err := executablePath()
				if err != nil {
					return err
				}
				if err := r.Enable(exe, "watch", "--background"); err != nil {
					return err
				}
				ok("Watcher will start at login (%s)", r.Location())
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Stop starting the watcher at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := startup.New()
				if err != nil {
					return err
				}
				if err := r.Disable(); err != nil {
					return err
				}
				ok("Login entry removed")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether the watcher starts at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := startup.New()
				if err != nil {
					return err
				}
				on, err := r.Enabled()
				if err != nil {
					return fmt.Errorf("reading login entry: %w", err)
				}
				state := color.YellowString("disabled")
				if on {
					state = color.GreenString("enabled")
				}
				printField("startup", state)
				printField("entry", r.Location())
				return nil
			},
		},
	)
	return cmd
}
