package cmdutil

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlesmith/cli/internal/config"
	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/testutil"
)

const overrideCatalog = `ruleSets: {}
entries: [
	{kind: "dir", destination: "."},
	{kind: "copy", source: "README.md", destination: "README.md"},
]
`

func TestLoadSources_Builtin(t *testing.T) {
	src, err := LoadSources(afero.NewMemMapFs(), ResolvedProject{})
	require.NoError(t, err)

	_, err = fs.Stat(src.Skeleton, "AcmeFooBundle.php")
	assert.NoError(t, err)
	assert.NotEmpty(t, src.Catalog.Entries)
}

func TestLoadSources_Overrides(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testutil.WriteFile(t, fsys, "/skeleton", "README.md", "# acme")
	testutil.WriteFile(t, fsys, "/", "catalog.cue", overrideCatalog)

	src, err := LoadSources(fsys, ResolvedProject{
		TemplateDir: config.ResolvedValue{Value: "/skeleton"},
		CatalogFile: config.ResolvedValue{Value: "/catalog.cue"},
	})
	require.NoError(t, err)

	data, err := fs.ReadFile(src.Skeleton, "README.md")
	require.NoError(t, err)
	assert.Equal(t, "# acme", string(data))
	assert.Len(t, src.Catalog.Entries, 2)
}

func TestLoadSources_MissingTemplateDir(t *testing.T) {
	_, err := LoadSources(afero.NewMemMapFs(), ResolvedProject{
		TemplateDir: config.ResolvedValue{Value: "/nope"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestLoadCatalog_Missing(t *testing.T) {
	_, err := LoadCatalog(afero.NewMemMapFs(), "/nope.cue")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitFilesystemError, oerrors.ExitCodeFromError(err))
}
