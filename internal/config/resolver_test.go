package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "BUNDLESMITH_PROJECT_DIR", EnvVar(KeyProjectDir))
	assert.Equal(t, "BUNDLESMITH_AUTHOR_NAME", EnvVar(KeyAuthorName))
	assert.Equal(t, "BUNDLESMITH_BUNDLE_KEYWORDS", EnvVar(KeyKeywords))
	assert.Equal(t, "BUNDLESMITH_CONFIG", EnvVar("config"))
}

func TestResolve_FlagPrecedence(t *testing.T) {
	t.Setenv("BUNDLESMITH_PROJECT_DIR", "/env")

	result := Resolve(ResolveOptions{
		Key:          KeyProjectDir,
		FlagValue:    "/flag",
		ConfigValue:  "/config",
		DefaultValue: ".",
	})

	assert.Equal(t, "/flag", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env", result.Shadowed[SourceEnv])
	assert.Equal(t, "/config", result.Shadowed[SourceConfig])
	assert.Equal(t, ".", result.Shadowed[SourceDefault])
}

func TestResolve_EnvPrecedence(t *testing.T) {
	t.Setenv("BUNDLESMITH_PROJECT_DIR", "/env")

	result := Resolve(ResolveOptions{
		Key:         KeyProjectDir,
		ConfigValue: "/config",
	})

	assert.Equal(t, "/env", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "/config", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolve_ConfigFallback(t *testing.T) {
	t.Setenv("BUNDLESMITH_AUTHOR_NAME", "")

	result := Resolve(ResolveOptions{
		Key:         KeyAuthorName,
		ConfigValue: "Jane Doe",
	})

	assert.Equal(t, "Jane Doe", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolve_Default(t *testing.T) {
	t.Setenv("BUNDLESMITH_PROJECT_DIR", "")

	result := Resolve(ResolveOptions{Key: KeyProjectDir, DefaultValue: "."})
	assert.Equal(t, ".", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolve_Nothing(t *testing.T) {
	t.Setenv("BUNDLESMITH_TEMPLATE_DIR", "")

	result := Resolve(ResolveOptions{Key: KeyTemplateDir})
	assert.Empty(t, result.Value)
	assert.Empty(t, result.Source)
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		t.Setenv("BUNDLESMITH_CONFIG", "/env/config.yaml")
		result, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("BUNDLESMITH_CONFIG", "")
		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, SourceDefault, result.Source)
		assert.Contains(t, result.Value, ".bundlesmith")
	})
}
