package config

import (
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/validator"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	fs     afero.Fs
}

// NewValidator creates a new configuration validator reading from fsys.
func NewValidator(fsys afero.Fs) (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(configSchemaCUE, cue.Filename("config.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema.LookupPath(cue.ParsePath("#Config")),
		fs:     fsys,
	}, nil
}

// ValidateFile checks the raw YAML at path against the schema, then checks
// the defaults it offers with the same rules the create wizard applies.
func (v *Validator) ValidateFile(path string) error {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return err
	}

	data, err := afero.ReadFile(v.fs, expandedPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ValidationErrors{{Field: "(file)", Message: err.Error()}}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	value := v.schema.Unify(v.ctx.Encode(raw))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return ValidationErrors{{Field: "(schema)", Message: err.Error()}}
	}

	var cfg Config
	if err := value.Decode(&cfg); err != nil {
		return ValidationErrors{{Field: "(schema)", Message: err.Error()}}
	}

	return v.Validate(&cfg)
}

// Validate checks the defaults a config offers with the wizard's validators.
// Empty values are allowed: they mean "ask".
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	checks := []struct {
		key   string
		value string
		fn    validator.Func
	}{
		{KeyAuthorName, cfg.Author.Name, validator.FullName},
		{KeyAuthorEmail, cfg.Author.Email, validator.Email},
		{KeyDescription, cfg.Bundle.Description, validator.Description},
		{KeyKeywords, cfg.Bundle.Keywords, validator.Keywords},
	}

	for _, c := range checks {
		if c.value == "" {
			continue
		}
		if _, err := c.fn(c.value); err != nil {
			errs = append(errs, ValidationError{Field: c.key, Message: message(err)})
		}
	}

	if cfg.ProjectDir != "" && strings.TrimSpace(cfg.ProjectDir) == "" {
		errs = append(errs, ValidationError{
			Field:   KeyProjectDir,
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func message(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
