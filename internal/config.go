package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvDataDir overrides the data directory when no --data flag is given
	EnvDataDir = "LEGISLATION_DATA_DIR"
	// DefaultConfigFile is read from the working directory when present
	DefaultConfigFile = "legislation-tracker.yaml"
	// DefaultDataDirName is the data directory name used by the default layout
	DefaultDataDirName = "data"
)

// Config holds optional settings read from a YAML file
type Config struct {
	DataDir         string `yaml:"data_dir,omitempty"`
	DashboardOutput string `yaml:"dashboard_output,omitempty"`
	Format          string `yaml:"format,omitempty"`

	path string
}

// LoadConfig reads the YAML config at path. An empty path falls back to
// DefaultConfigFile in the working directory, and a missing default file
// yields an empty config.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Source: "config", Key: path, Err: err}
	}
	cfg.path = path

	LogDebug("Loaded config from %s", path)
	return cfg, nil
}

// Path returns the file the config was read from, if any
func (c *Config) Path() string {
	return c.path
}

// ResolveDataDir picks the data directory: the flag value, then
// $LEGISLATION_DATA_DIR, then data_dir from the config file (relative to the
// file), then the default layout.
func ResolveDataDir(flagValue string, cfg *Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return env, nil
	}
	if cfg != nil && cfg.DataDir != "" {
		if filepath.IsAbs(cfg.DataDir) || cfg.path == "" {
			return cfg.DataDir, nil
		}
		return filepath.Join(filepath.Dir(cfg.path), cfg.DataDir), nil
	}
	return DefaultDataDir()
}

// DefaultDataDir returns the data directory beside the executable's parent
// directory (bin/../data) when it exists, otherwise ./data
func DefaultDataDir() (string, error) {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		candidate := filepath.Join(filepath.Dir(filepath.Dir(exe)), DefaultDataDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, DefaultDataDirName), nil
}
