package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/shotshelf/internal/config"
	"github.com/blackwell-systems/shotshelf/internal/util"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeDefaultConfig(cfgPath, force); err != nil {
				return err
			}
			ok("Wrote %s", cfgPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if util.Exists(cfgPath) {
				fmt.Fprintf(os.Stderr, "# %s\n", cfgPath)
			} else {
				fmt.Fprintf(os.Stderr, "# %s (not found, defaults shown)\n", cfgPath)
			}
			return config.Encode(os.Stdout, cfg)
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(cfgPath)
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}

func writeDefaultConfig(path string, force bool) error {
	if util.Exists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	d := config.Default()
	if err := config.Save(&d, path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
