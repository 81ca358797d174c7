// Package config provides configuration loading and management.
package config

// Configuration keys, shared by the loader, the resolver and the env mapping.
const (
	KeyProjectDir  = "projectDir"
	KeyTemplateDir = "templateDir"
	KeyCatalogFile = "catalogFile"
	KeyAuthorName  = "author.name"
	KeyAuthorEmail = "author.email"
	KeyDescription = "bundle.description"
	KeyKeywords    = "bundle.keywords"
	KeyTimestamps  = "log.timestamps"
)

// AuthorConfig holds the defaults offered for the author questions.
type AuthorConfig struct {
	// Name is offered for "your-name". Env: BUNDLESMITH_AUTHOR_NAME
	Name string `json:"name,omitempty" mapstructure:"name" yaml:"name"`

	// Email is offered for "your-email". Env: BUNDLESMITH_AUTHOR_EMAIL
	Email string `json:"email,omitempty" mapstructure:"email" yaml:"email"`
}

// BundleConfig holds the defaults offered for the bundle metadata questions.
type BundleConfig struct {
	// Description is offered for "bundle-description".
	Description string `json:"description,omitempty" mapstructure:"description" yaml:"description"`

	// Keywords is offered for "bundle-keywords", e.g. ["foo", "bar"].
	Keywords string `json:"keywords,omitempty" mapstructure:"keywords" yaml:"keywords"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the bundlesmith configuration.
// Loaded from ~/.bundlesmith/config.yaml.
type Config struct {
	// ProjectDir is the host Symfony project. Env: BUNDLESMITH_PROJECT_DIR
	ProjectDir string `json:"projectDir,omitempty" mapstructure:"projectDir" yaml:"projectDir,omitempty"`

	// TemplateDir replaces the built-in skeleton when set.
	TemplateDir string `json:"templateDir,omitempty" mapstructure:"templateDir" yaml:"templateDir,omitempty"`

	// CatalogFile replaces the built-in catalog when set (.cue or .yaml).
	CatalogFile string `json:"catalogFile,omitempty" mapstructure:"catalogFile" yaml:"catalogFile,omitempty"`

	Author AuthorConfig `json:"author,omitempty" mapstructure:"author" yaml:"author"`
	Bundle BundleConfig `json:"bundle,omitempty" mapstructure:"bundle" yaml:"bundle"`
	Log    LogConfig    `json:"log,omitempty" mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `bundlesmith config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		ProjectDir: ".",
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// Lookup returns the string value stored under key.
func (c *Config) Lookup(key string) string {
	switch key {
	case KeyProjectDir:
		return c.ProjectDir
	case KeyTemplateDir:
		return c.TemplateDir
	case KeyCatalogFile:
		return c.CatalogFile
	case KeyAuthorName:
		return c.Author.Name
	case KeyAuthorEmail:
		return c.Author.Email
	case KeyDescription:
		return c.Bundle.Description
	case KeyKeywords:
		return c.Bundle.Keywords
	default:
		return ""
	}
}
