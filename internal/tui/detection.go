package tui

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/util"
)

// ShouldUseTUI returns true if the command should draw interactive output.
// That requires a terminal on stdout, no --no-interactive flag, and no
// --json flag (scripting intent).
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() {
		return false
	}
	if noInteractive, _ := cmd.Flags().GetBool("no-interactive"); noInteractive {
		return false
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return false
	}
	return true
}
