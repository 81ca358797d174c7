package cmdutil

import (
	"io/fs"

	"github.com/spf13/afero"

	"github.com/bundlesmith/cli/internal/catalog"
	"github.com/bundlesmith/cli/internal/config"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/templates"
)

// Sources are the template tree and catalog a command works from.
type Sources struct {
	Skeleton fs.FS
	Catalog  *catalog.Catalog
}

// LoadSources opens the skeleton and catalog named by rp. Empty values select
// the built-in ones.
func LoadSources(fsys afero.Fs, rp ResolvedProject) (*Sources, error) {
	templateDir, err := config.ExpandPath(rp.TemplateDir.Value)
	if err != nil {
		return nil, err
	}
	skeleton, err := templates.Source(fsys, templateDir)
	if err != nil {
		return nil, err
	}

	cat, err := LoadCatalog(fsys, rp.CatalogFile.Value)
	if err != nil {
		return nil, err
	}

	output.Debug("sources loaded",
		"templates", orBuiltin(templateDir),
		"catalog", orBuiltin(rp.CatalogFile.Value),
		"entries", len(cat.Entries),
	)
	return &Sources{Skeleton: skeleton, Catalog: cat}, nil
}

// LoadCatalog loads the catalog at file, or the built-in catalog when file is empty.
func LoadCatalog(fsys afero.Fs, file string) (*catalog.Catalog, error) {
	if file == "" {
		return catalog.Load()
	}
	expanded, err := config.ExpandPath(file)
	if err != nil {
		return nil, err
	}
	return catalog.LoadFile(fsys, expanded)
}

func orBuiltin(v string) string {
	if v == "" {
		return "built-in"
	}
	return v
}
