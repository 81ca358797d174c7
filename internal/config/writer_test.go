package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/bundlesmith/cli/internal/errors"
)

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# bundlesmith configuration.")
	assert.Contains(t, out, "projectDir: .")
	assert.Contains(t, out, "timestamps: true")
	assert.Contains(t, out, "author:")
}

func TestWriteDefault(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := "/home/.bundlesmith/config.yaml"

	require.NoError(t, WriteDefault(fsys, path, false))

	t.Run("written file loads and validates", func(t *testing.T) {
		cfg, err := NewLoader(fsys).Load(path)
		require.NoError(t, err)
		assert.Equal(t, ".", cfg.ProjectDir)

		v, err := NewValidator(fsys)
		require.NoError(t, err)
		assert.NoError(t, v.ValidateFile(path))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		err := WriteDefault(fsys, path, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("force overwrites", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fsys, path, []byte("projectDir: /old\n"), 0o644))
		require.NoError(t, WriteDefault(fsys, path, true))

		data, err := afero.ReadFile(fsys, path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "/old")
	})
}
