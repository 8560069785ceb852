package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the configuration at path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{
				Path: path,
				Hint: "run 'launchd setup' to create configuration",
			}
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &PermissionError{
				Path: path,
				Op:   "read",
				Fix:  fmt.Sprintf("run: chmod 644 %s", path),
			}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "restore from .bak file if available",
		}
	}

	cfg.applyDefaults()
	cfg.dropMalformedCommands()
	return &cfg, nil
}

// LoadOrCreate loads the default config file, falling back to a default
// configuration (without writing it) when the file is missing. Parse and
// permission failures also degrade to defaults with a logged warning: a
// broken config must not prevent startup.
func LoadOrCreate() *Config {
	cfg, err := Load()
	if err != nil {
		if _, missing := err.(*ConfigNotFoundError); !missing {
			log.Printf("Warning: %v, using defaults", err)
		}
		return NewConfig()
	}
	return cfg
}

// applyDefaults fills in zero-valued sections and tunables.
func (c *Config) applyDefaults() {
	defaults := DefaultSettings()
	if c.Settings == nil {
		c.Settings = defaults
	} else {
		if c.Settings.MaxResults <= 0 {
			c.Settings.MaxResults = defaults.MaxResults
		}
		if c.Settings.FuzzyThreshold <= 0 {
			c.Settings.FuzzyThreshold = defaults.FuzzyThreshold
		}
		if c.Settings.MinLaunches <= 0 {
			c.Settings.MinLaunches = defaults.MinLaunches
		}
		if c.Settings.CloseDelayMs <= 0 {
			c.Settings.CloseDelayMs = defaults.CloseDelayMs
		}
		if c.Settings.Matcher == "" {
			c.Settings.Matcher = defaults.Matcher
		}
	}

	if c.Engines == nil {
		c.Engines = DefaultEngines()
	}
	if c.Commands == nil {
		c.Commands = map[string]*Command{}
	}
}

// dropMalformedCommands removes command entries without the required exec
// field. Well-formed siblings are kept.
func (c *Config) dropMalformedCommands() {
	for name, cmd := range c.Commands {
		if cmd == nil || cmd.Exec == "" {
			log.Printf("Warning: skipping malformed command %q: missing exec field", name)
			delete(c.Commands, name)
		}
	}
}
