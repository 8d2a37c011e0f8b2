package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/uiprefs/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config is the optional uiprefs CLI configuration.
type Config struct {
	Home    string  `yaml:"home,omitempty"`
	Logging Logging `yaml:"logging,omitempty"`
}

// Logging selects the log level and file for the CLI.
type Logging struct {
	Level string `yaml:"level,omitempty"`
	Path  string `yaml:"path,omitempty"`
}

// Load reads the config at path. A missing file yields the zero Config.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks the logging level name.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err //nolint:wrapcheck // already descriptive
	}
	return nil
}
