// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	catalogcmd "github.com/bundlesmith/cli/internal/cmd/catalog"
	configcmd "github.com/bundlesmith/cli/internal/cmd/config"
	"github.com/bundlesmith/cli/internal/cmd/create"
	"github.com/bundlesmith/cli/internal/cmdtypes"
	"github.com/bundlesmith/cli/internal/config"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/version"
)

// NewRootCmd creates the root command for the bundlesmith CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cmdtypes.GlobalConfig{Fs: afero.NewOsFs()})
}

func newRootCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "bundlesmith",
		Short: "Symfony bundle skeleton generator",
		Long: `bundlesmith creates the skeleton of a Symfony bundle under
lib/<domain>/<bundle>/ of a host project and wires it into the project's
composer.json, config/bundles.php and package configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: BUNDLESMITH_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(create.NewCreateCmd(cfg))
	rootCmd.AddCommand(catalogcmd.NewCatalogCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals resolves the config path, loads the config file and sets
// up logging. A broken config file does not stop commands that never read it.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, configFlag string, verbose, timestamps bool) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}

	cfg.ConfigPath = pathResult.Value
	cfg.Verbose = verbose

	loaded, loadErr := config.NewLoader(cfg.Filesystem()).Load(cfg.ConfigPath)
	if loadErr != nil {
		loaded = &config.Config{}
	}
	cfg.Config = loaded

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", cfg.ConfigPath, "error", loadErr)
	}

	info := version.Get()
	output.Debug("bundlesmith started",
		"version", info.Version,
		"cue_sdk", info.CUESDKVersion,
	)
	config.LogResolvedValues(pathResult)

	return nil
}
