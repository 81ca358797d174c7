// Package cmdutil provides shared command utilities for the create and
// catalog commands. It centralizes the project flag group, template and
// catalog loading, and result reporting.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/bundlesmith/cli/internal/config"
)

// ProjectFlags holds flags selecting the host project and the template
// sources (create, catalog).
type ProjectFlags struct {
	ProjectDir  string
	TemplateDir string
	CatalogFile string
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.ProjectDir, "project-dir", "p", "",
		"Host Symfony project directory (default: from config, then \".\")")
	f.AddSourcesTo(cmd)
}

// AddSourcesTo registers only the template and catalog flags.
func (f *ProjectFlags) AddSourcesTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.TemplateDir, "template-dir", "",
		"Directory replacing the built-in skeleton")
	cmd.Flags().StringVar(&f.CatalogFile, "catalog", "",
		"Catalog file (.cue or .yaml) replacing the built-in catalog")
}

// ResolvedProject is the project flag group after precedence resolution.
type ResolvedProject struct {
	ProjectDir  config.ResolvedValue
	TemplateDir config.ResolvedValue
	CatalogFile config.ResolvedValue
}

// Resolve applies flag > env > config > default to every project flag and
// logs the outcome at debug level.
func (f *ProjectFlags) Resolve(cfg *config.Config) ResolvedProject {
	if cfg == nil {
		cfg = &config.Config{}
	}

	rp := ResolvedProject{
		ProjectDir: config.Resolve(config.ResolveOptions{
			Key:          config.KeyProjectDir,
			FlagValue:    f.ProjectDir,
			ConfigValue:  cfg.ProjectDir,
			DefaultValue: ".",
		}),
		TemplateDir: config.Resolve(config.ResolveOptions{
			Key:         config.KeyTemplateDir,
			FlagValue:   f.TemplateDir,
			ConfigValue: cfg.TemplateDir,
		}),
		CatalogFile: config.Resolve(config.ResolveOptions{
			Key:         config.KeyCatalogFile,
			FlagValue:   f.CatalogFile,
			ConfigValue: cfg.CatalogFile,
		}),
	}

	config.LogResolvedValues(rp.ProjectDir, rp.TemplateDir, rp.CatalogFile)
	return rp
}
