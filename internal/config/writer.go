package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	oerrors "github.com/bundlesmith/cli/internal/errors"
)

const fileHeader = `# bundlesmith configuration.
# Precedence: flag > BUNDLESMITH_* env > this file > built-in default.
# Empty author and bundle values mean "ask interactively".
`

// Marshal renders cfg as the YAML written by `config init`.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteDefault writes DefaultConfig to path. An existing file is only
// replaced when force is set.
func WriteDefault(fsys afero.Fs, path string, force bool) error {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return err
	}

	exists, err := afero.Exists(fsys, expandedPath)
	if err != nil {
		return oerrors.NewFilesystemError("checking config file", expandedPath, err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "config file already exists",
			Message:  "refusing to overwrite the existing config file",
			Location: expandedPath,
			Hint:     "Use --force to overwrite",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return oerrors.NewFilesystemError("creating config directory", filepath.Dir(expandedPath), err)
	}
	if err := afero.WriteFile(fsys, expandedPath, data, 0o644); err != nil {
		return oerrors.NewFilesystemError("writing config file", expandedPath, err)
	}

	return nil
}
