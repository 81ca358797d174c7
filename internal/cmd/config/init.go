package config

import (
	"github.com/spf13/cobra"

	"github.com/bundlesmith/cli/internal/cmdtypes"
	"github.com/bundlesmith/cli/internal/config"
	"github.com/bundlesmith/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a bundlesmith configuration file with default values.

The file is written to ~/.bundlesmith/config.yaml unless --config or
BUNDLESMITH_CONFIG names another location.

Examples:
  # Initialize configuration
  bundlesmith config init

  # Overwrite existing configuration
  bundlesmith config init --force`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	if err := config.WriteDefault(cfg.Filesystem(), path, force); err != nil {
		return cmdtypes.Exit(err)
	}

	output.Println(output.FormatCheckmark("Config file created: " + output.StyleNoun.Render(path)))
	output.Println("Validate with: bundlesmith config vet")
	return nil
}
