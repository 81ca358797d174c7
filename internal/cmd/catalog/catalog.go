// Package catalog implements the catalog command, which lists the steps a
// create run performs.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bundlesmith/cli/internal/catalog"
	"github.com/bundlesmith/cli/internal/cmdtypes"
	"github.com/bundlesmith/cli/internal/cmdutil"
	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/naming"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/scaffold"
	"github.com/bundlesmith/cli/internal/templates"
)

// Row is one listed catalog entry.
type Row struct {
	Kind        string `json:"kind" yaml:"kind"`
	Scope       string `json:"scope" yaml:"scope"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
	Destination string `json:"destination" yaml:"destination"`
	Optional    bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Rewrites is only set for resolved listings.
	Rewrites []templates.Pair `json:"rewrites,omitempty" yaml:"rewrites,omitempty"`
}

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var pf cmdutil.ProjectFlags
	var outputFlag string

	c := &cobra.Command{
		Use:   "catalog [domain-name bundle-name]",
		Short: "List the files a create run writes",
		Long: `List the catalog entries create walks, in order.

Without arguments destinations are shown as path templates. With a domain
and bundle name they are resolved for that bundle, and the yaml and json
formats also list the substitutions applied to each file. Nothing is written.

Every copy entry must have its template in the skeleton; missing templates
are reported and make the command fail.

Examples:
  # Show the built-in catalog
  bundlesmith catalog

  # Show where files for Acme/FooBundle would go
  bundlesmith catalog Acme FooBundle

  # Check an override catalog against an override skeleton
  bundlesmith catalog --catalog ./catalog.cue --template-dir ./skeleton -o yaml`,
		Args: func(c *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCatalog(args, cfg, &pf, outputFlag)
		},
	}

	pf.AddSourcesTo(c)
	c.Flags().StringVarP(&outputFlag, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runCatalog(args []string, cfg *cmdtypes.GlobalConfig, pf *cmdutil.ProjectFlags, outputFlag string) error {
	format := output.ParseOutputFormat(outputFlag)
	if !format.IsValid() {
		return cmdtypes.Exit(oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", outputFlag),
			"output",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", "),
		))
	}

	src, err := cmdutil.LoadSources(cfg.Filesystem(), pf.Resolve(cfg.Settings()))
	if err != nil {
		return cmdtypes.Exit(err)
	}

	rows, err := buildRows(args, src)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	if err := write(rows, format); err != nil {
		return cmdtypes.Exit(err)
	}
	if format == output.FormatTable {
		output.Println(summary(src.Catalog))
	}

	return cmdtypes.Exit(checkTemplates(src))
}

func buildRows(args []string, src *cmdutil.Sources) ([]Row, error) {
	if len(args) == 0 {
		rows := make([]Row, 0, len(src.Catalog.Entries))
		for _, e := range src.Catalog.Entries {
			rows = append(rows, Row{
				Kind:        string(e.Kind),
				Scope:       string(e.Scope),
				Source:      e.Source,
				Destination: e.Destination,
				Optional:    e.Optional,
				Description: e.Description,
			})
		}
		return rows, nil
	}

	id, err := naming.NewIdentity(args[0], args[1])
	if err != nil {
		return nil, err
	}

	steps, err := scaffold.NewEngine(nil, src.Skeleton, src.Catalog, nil).Plan(id)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, Row{
			Kind:        string(s.Kind),
			Scope:       string(s.Scope),
			Source:      s.Source,
			Destination: s.Path,
			Optional:    s.Optional,
			Description: s.Description,
			Rewrites:    s.Rewrites,
		})
	}
	return rows, nil
}

func write(rows []Row, format output.OutputFormat) error {
	switch format {
	case output.FormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		output.Print(string(data))
	case output.FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		output.Println(string(data))
	default:
		tbl := output.NewTable("KIND", "SCOPE", "SOURCE", "DESTINATION", "DESCRIPTION")
		for _, r := range rows {
			desc := r.Description
			if r.Optional {
				desc = strings.TrimSpace(desc + " (optional)")
			}
			tbl.Row(r.Kind, r.Scope, r.Source, r.Destination, desc)
		}
		output.Println(tbl.String())
	}
	return nil
}

// summary counts entries per kind, e.g. "41 entries: 26 copy, 12 dir, 2 patch, 1 rename".
func summary(cat *catalog.Catalog) string {
	counts := cat.Count()
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%d %s", counts[catalog.Kind(k)], k))
	}
	return output.StyleDim.Render(fmt.Sprintf("%d entries: %s", len(cat.Entries), strings.Join(parts, ", ")))
}

// checkTemplates reports copy entries whose template is not in the skeleton.
func checkTemplates(src *cmdutil.Sources) error {
	files, err := templates.ListTemplateFiles(src.Skeleton)
	if err != nil {
		return oerrors.NewFilesystemError("listing templates", "", err)
	}
	have := make(map[string]bool, len(files))
	for _, f := range files {
		have[f] = true
	}

	var missing []string
	for _, e := range src.Catalog.Entries {
		if e.Kind == catalog.KindCopy && !have[e.Source] {
			missing = append(missing, e.Source)
			output.Warn("template missing", "source", e.Source)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &oerrors.DetailError{
		Type:    "invalid catalog",
		Message: fmt.Sprintf("%d copy entries have no template", len(missing)),
		Context: map[string]string{"missing": strings.Join(missing, ", ")},
		Hint:    "Add the files to the template directory or remove the entries",
		Cause:   oerrors.ErrValidation,
	}
}
