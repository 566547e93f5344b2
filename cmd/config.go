package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aocctl/internal/app"
	"aocctl/internal/config"
)

var configInitForce bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the aocctl configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	})

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a file",
		Long: `Writes the default configuration to path, or to the user configuration
file (~/.config/aocctl/config.yaml) when no path is given. An existing file
is only replaced with --force.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfigInit,
	}
	initCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := config.GetUserConfigPath()
		if err != nil {
			return fmt.Errorf("determining user config path: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}
	if err := config.GetDefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}
