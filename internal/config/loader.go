package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Loader reads the config file. Environment variables are applied by the
// resolver so that every value's source can be reported.
type Loader struct {
	v  *viper.Viper
	fs afero.Fs
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fsys)
	return &Loader{v: v, fs: fsys}
}

// Load loads configuration from configFile. A missing file yields an empty
// Config, not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := afero.Exists(l.fs, expandedPath)
	if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return &Config{}, nil
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func (l *Loader) ConfigFileExists(configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}
	return afero.Exists(l.fs, expandedPath)
}
