package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bundlesmith/cli/internal/cmdtypes"
	"github.com/bundlesmith/cli/internal/cmdutil"
	"github.com/bundlesmith/cli/internal/config"
	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the bundlesmith configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file matches the config schema
  3. Configured defaults pass the create wizard's rules
  4. Configured template directory and catalog load

The config path is resolved using precedence:
  --config flag > BUNDLESMITH_CONFIG env > ~/.bundlesmith/config.yaml

Examples:
  # Validate default configuration
  bundlesmith config vet

  # Validate custom config path
  bundlesmith config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVet(cfg)
		},
	}
}

func runVet(cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdtypes.Exit(err)
	}
	fsys := cfg.Filesystem()

	output.Debug("validating config", "path", path)

	exists, err := config.NewLoader(fsys).ConfigFileExists(path)
	if err != nil {
		return cmdtypes.Exit(oerrors.NewFilesystemError("checking config file", path, err))
	}
	if !exists {
		return cmdtypes.Exit(oerrors.NewNotFoundError(
			"configuration file not found",
			path,
			"Run 'bundlesmith config init' to create default configuration",
		))
	}
	output.Println(output.FormatVetCheck("Config file found", path))

	v, err := config.NewValidator(fsys)
	if err != nil {
		return cmdtypes.Exit(err)
	}
	if err := v.ValidateFile(path); err != nil {
		return cmdtypes.Exit(&oerrors.DetailError{
			Type:     "invalid config",
			Message:  err.Error(),
			Location: path,
			Cause:    oerrors.ErrValidation,
		})
	}
	output.Println(output.FormatVetCheck("Schema and defaults valid", ""))

	loaded, err := config.NewLoader(fsys).Load(path)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	var pf cmdutil.ProjectFlags
	src, err := cmdutil.LoadSources(fsys, pf.Resolve(loaded))
	if err != nil {
		return cmdtypes.Exit(err)
	}
	output.Println(output.FormatVetCheck("Templates and catalog load",
		fmt.Sprintf("%d entries", len(src.Catalog.Entries))))

	return nil
}
