package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlesmith/cli/internal/config"
)

func TestProjectFlags_AddTo(t *testing.T) {
	var pf ProjectFlags
	cmd := &cobra.Command{Use: "test"}
	pf.AddTo(cmd)

	projectFlag := cmd.Flags().Lookup("project-dir")
	require.NotNil(t, projectFlag)
	assert.Equal(t, "p", projectFlag.Shorthand)
	assert.Equal(t, "", projectFlag.DefValue)

	require.NotNil(t, cmd.Flags().Lookup("template-dir"))
	require.NotNil(t, cmd.Flags().Lookup("catalog"))
}

func TestProjectFlags_Resolve(t *testing.T) {
	t.Setenv("BUNDLESMITH_PROJECT_DIR", "")
	t.Setenv("BUNDLESMITH_TEMPLATE_DIR", "/env/skeleton")
	t.Setenv("BUNDLESMITH_CATALOG_FILE", "")

	pf := ProjectFlags{CatalogFile: "/flag/catalog.cue"}
	rp := pf.Resolve(&config.Config{
		TemplateDir: "/config/skeleton",
		CatalogFile: "/config/catalog.cue",
	})

	assert.Equal(t, ".", rp.ProjectDir.Value)
	assert.Equal(t, config.SourceDefault, rp.ProjectDir.Source)

	assert.Equal(t, "/env/skeleton", rp.TemplateDir.Value)
	assert.Equal(t, config.SourceEnv, rp.TemplateDir.Source)

	assert.Equal(t, "/flag/catalog.cue", rp.CatalogFile.Value)
	assert.Equal(t, config.SourceFlag, rp.CatalogFile.Source)
}

func TestProjectFlags_ResolveNilConfig(t *testing.T) {
	t.Setenv("BUNDLESMITH_PROJECT_DIR", "")

	var pf ProjectFlags
	rp := pf.Resolve(nil)
	assert.Equal(t, ".", rp.ProjectDir.Value)
	assert.Empty(t, rp.TemplateDir.Value)
}

func TestProjectFlags_AddSourcesTo(t *testing.T) {
	var pf ProjectFlags
	cmd := &cobra.Command{Use: "test"}
	pf.AddSourcesTo(cmd)

	assert.Nil(t, cmd.Flags().Lookup("project-dir"))
	assert.NotNil(t, cmd.Flags().Lookup("template-dir"))
	assert.NotNil(t, cmd.Flags().Lookup("catalog"))
}
