package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bundlesmith/cli/internal/cmdtypes"
	"github.com/bundlesmith/cli/internal/config"
	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/testutil"
)

const testConfigPath = "/home/.bundlesmith/config.yaml"

func newGlobal(t *testing.T) (*cmdtypes.GlobalConfig, afero.Fs) {
	t.Helper()
	t.Setenv(config.EnvVar(config.KeyTemplateDir), "")
	t.Setenv(config.EnvVar(config.KeyCatalogFile), "")

	fsys := afero.NewMemMapFs()
	return &cmdtypes.GlobalConfig{ConfigPath: testConfigPath, Fs: fsys}, fsys
}

func run(t *testing.T, cfg *cmdtypes.GlobalConfig, args ...string) error {
	t.Helper()
	cmd := NewConfigCmd(cfg)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestNewConfigCmd(t *testing.T) {
	cmd := NewConfigCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "config", cmd.Use)
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"init", "vet"}, names)
}

func TestConfigInit_CreatesFile(t *testing.T) {
	cfg, fsys := newGlobal(t)
	buf := testutil.CaptureOutput(t)

	require.NoError(t, run(t, cfg, "init"))

	content := testutil.ReadFile(t, fsys, testConfigPath)
	assert.Contains(t, content, "projectDir: .")
	assert.Contains(t, testutil.StripANSI(buf.String()), "Config file created: "+testConfigPath)
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	cfg, fsys := newGlobal(t)
	testutil.CaptureOutput(t)
	testutil.WriteFile(t, fsys, "/home/.bundlesmith", "config.yaml", "projectDir: /old\n")

	err := run(t, cfg, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	assert.Equal(t, "projectDir: /old\n", testutil.ReadFile(t, fsys, testConfigPath))
}

func TestConfigInit_ForceOverwrite(t *testing.T) {
	cfg, fsys := newGlobal(t)
	testutil.CaptureOutput(t)
	testutil.WriteFile(t, fsys, "/home/.bundlesmith", "config.yaml", "projectDir: /old\n")

	require.NoError(t, run(t, cfg, "init", "--force"))
	assert.NotContains(t, testutil.ReadFile(t, fsys, testConfigPath), "/old")
}

func TestConfigVet_Valid(t *testing.T) {
	cfg, _ := newGlobal(t)
	buf := testutil.CaptureOutput(t)

	require.NoError(t, run(t, cfg, "init"))
	require.NoError(t, run(t, cfg, "vet"))

	out := testutil.StripANSI(buf.String())
	assert.Contains(t, out, "✔ Config file found")
	assert.Contains(t, out, "✔ Schema and defaults valid")
	assert.Regexp(t, `✔ Templates and catalog load\s+\d+ entries`, out)
}

func TestConfigVet_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode int
	}{
		{"missing file", "", oerrors.ExitNotFound},
		{"unknown key", "namespace: default\n", oerrors.ExitValidationError},
		{"bad email default", "author:\n  email: nope\n", oerrors.ExitValidationError},
		{"missing template dir", "templateDir: /nope\n", oerrors.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, fsys := newGlobal(t)
			testutil.CaptureOutput(t)
			if tt.content != "" {
				testutil.WriteFile(t, fsys, "/home/.bundlesmith", "config.yaml", tt.content)
			}

			err := run(t, cfg, "vet")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, oerrors.ExitCodeFromError(err))
		})
	}
}
