package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = ".linkcheck.yaml"

// Config represents the application configuration.
type Config struct {
	// Ignore lists directory names excluded from markdown discovery,
	// matched by base name at any depth.
	Ignore []string `yaml:"ignore,omitempty"`
}

// Default returns the configuration used when no config file exists. No
// directories are ignored; a bare run checks the whole tree.
func Default() *Config {
	return &Config{}
}

// Load reads configuration from the specified file. A missing default file is
// not an error: the tool works without any configuration.
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultFile
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- path is operator-provided
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	return &cfg, nil
}
