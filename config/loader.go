package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/unitstream/errors"
)

// Load reads a configuration file, merges it over the defaults, and
// validates the result. The format is chosen by file extension: .yaml and
// .yml decode as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "config", "Load", "read config file")
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapInvalid(err, "config", "Load",
				fmt.Sprintf("parse YAML config %s", path))
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapInvalid(err, "config", "Load",
				fmt.Sprintf("parse JSON config %s", path))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "validate config")
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration file when path is non-empty,
// otherwise returns the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, errors.WrapFatal(err, "config", "LoadOrDefault", "validate default config")
		}
		return cfg, nil
	}
	return Load(path)
}
