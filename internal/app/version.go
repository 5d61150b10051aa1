package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/update"
)

var appVersion = update.DevVersion

// SetVersion records the build version injected by the release pipeline.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shotshelf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shotshelf %s (%s/%s)\n", appVersion, runtime.GOOS, runtime.GOARCH)
		},
	}
}
