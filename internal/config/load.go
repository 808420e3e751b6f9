package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName  = "skydrop"
	fileName = "config.yaml"

	// EnvConfig names a config file when --config is not given.
	EnvConfig = "SKYDROP_CONFIG"
)

// Load builds the configuration from defaults, then the config file, then
// flags, and validates the result.
func Load() (*Config, error) {
	cfg := Default()

	if path := configSource(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configSource picks the file to read: --config, then $SKYDROP_CONFIG, then
// the first existing file in the search path. An explicit path is returned
// even when missing so the caller reports it.
func configSource() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return findConfigFile()
}

// findConfigFile looks in the working directory, then in ConfigDir.
func findConfigFile() string {
	for _, path := range []string{
		fileName,
		filepath.Join(ConfigDir(), fileName),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory for skydrop.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, appName)
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelled option does not silently fall back to its default. An empty
// file leaves cfg unchanged.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
