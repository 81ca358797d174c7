// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/create, internal/cmd/catalog, internal/cmd/config).
package cmdtypes

import (
	"github.com/spf13/afero"

	"github.com/bundlesmith/cli/internal/config"
	oerrors "github.com/bundlesmith/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file. Never nil after PersistentPreRunE.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Fs is the filesystem commands read and write through.
	Fs afero.Fs

	Verbose bool
}

// Settings returns the loaded config, or an empty one before loading.
func (g *GlobalConfig) Settings() *config.Config {
	if g == nil || g.Config == nil {
		return &config.Config{}
	}
	return g.Config
}

// Filesystem returns Fs, defaulting to the OS filesystem.
func (g *GlobalConfig) Filesystem() afero.Fs {
	if g == nil || g.Fs == nil {
		return afero.NewOsFs()
	}
	return g.Fs
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitFilesystemError  = oerrors.ExitFilesystemError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// Exit wraps err in an ExitError carrying the code derived from it.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}
