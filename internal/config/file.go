package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values. They mirror the keys
// the rename plugin stored its settings under.
const (
	EnvMaxFolders    = "PATHPRUNE_MAXFOLDERS"
	EnvPriorityWords = "PATHPRUNE_PRIORITY_WORDS"
	EnvAvoidWords    = "PATHPRUNE_AVOID_WORDS"
	EnvTemplate      = "PATHPRUNE_TEMPLATE"
)

// LoadFile reads a YAML config file over c. Keys missing from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Load returns the defaults overlaid with the YAML file at path and the
// environment.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	cfg.ConfigFile = path
	if err := cfg.LoadFile(path); err != nil {
		return Config{}, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies non-empty environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvMaxFolders); v != "" {
		c.MaxFolders = v
	}
	if v := os.Getenv(EnvPriorityWords); v != "" {
		c.PriorityWords = v
	}
	if v := os.Getenv(EnvAvoidWords); v != "" {
		c.AvoidWords = v
	}
	if v := os.Getenv(EnvTemplate); v != "" {
		c.Template = v
	}
}

// Save writes c as YAML to path. Used by `pathprune check --save`.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
