package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/goscol/internal/s16"
)

// Config holds the user-adjustable defaults applied when a command
// flag is not given.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Sweep    Sweep    `yaml:"sweep"`
}

// Defaults are the material and design parameters assumed for a column
// unless the command line says otherwise.
type Defaults struct {
	E   float64 `yaml:"elastic_modulus"`
	Fy  float64 `yaml:"yield_stress"`
	Phi float64 `yaml:"phi"`
	N   float64 `yaml:"n"`
	Kx  float64 `yaml:"kx"`
	Ky  float64 `yaml:"ky"`
}

// Sweep holds the default height range for resistance curves.
type Sweep struct {
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
	Interval  float64 `yaml:"interval"`
}

// DefaultConfig returns the built-in defaults: common structural steel
// in SI-mm units, pinned ends, hot-rolled shape parameter.
func DefaultConfig() *Config {
	return &Config{
		Defaults: Defaults{
			E:   200e3,
			Fy:  350,
			Phi: s16.Phi,
			N:   s16.NHotRolled,
			Kx:  1.0,
			Ky:  1.0,
		},
		Sweep: Sweep{
			MinHeight: 200,
			MaxHeight: 30000,
			Interval:  200,
		},
	}
}

// Load loads config from the user's config directory
// Returns the built-in defaults if the file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return defaults if we can't determine the config path
		return DefaultConfig(), nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// LoadOrDefault loads the config and falls back to the built-in
// defaults on any error, for callers that must not fail on a bad
// config file.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the resolved location of the config file, whether or
// not the file exists yet.
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "goscol", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "goscol", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Defaults.E == 0 {
		c.Defaults.E = def.Defaults.E
	}
	if c.Defaults.Fy == 0 {
		c.Defaults.Fy = def.Defaults.Fy
	}
	if c.Defaults.Phi == 0 {
		c.Defaults.Phi = def.Defaults.Phi
	}
	if c.Defaults.N == 0 {
		c.Defaults.N = def.Defaults.N
	}
	if c.Defaults.Kx == 0 {
		c.Defaults.Kx = def.Defaults.Kx
	}
	if c.Defaults.Ky == 0 {
		c.Defaults.Ky = def.Defaults.Ky
	}
	if c.Sweep.MinHeight == 0 {
		c.Sweep.MinHeight = def.Sweep.MinHeight
	}
	if c.Sweep.MaxHeight == 0 {
		c.Sweep.MaxHeight = def.Sweep.MaxHeight
	}
	if c.Sweep.Interval == 0 {
		c.Sweep.Interval = def.Sweep.Interval
	}
}
