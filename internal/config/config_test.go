package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.E != 200e3 {
		t.Errorf("Default E = %v, want 200000", cfg.Defaults.E)
	}
	if cfg.Defaults.Fy != 350 {
		t.Errorf("Default Fy = %v, want 350", cfg.Defaults.Fy)
	}
	if cfg.Defaults.Phi != 0.9 {
		t.Errorf("Default Phi = %v, want 0.9", cfg.Defaults.Phi)
	}
	if cfg.Defaults.N != 1.34 {
		t.Errorf("Default N = %v, want 1.34", cfg.Defaults.N)
	}
	if cfg.Sweep.MaxHeight != 30000 {
		t.Errorf("Default MaxHeight = %v, want 30000", cfg.Sweep.MaxHeight)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Set to a temp dir that doesn't have a config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.Defaults.Fy != 350 {
		t.Errorf("Loaded Fy = %v, want 350 (default)", cfg.Defaults.Fy)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir with config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "goscol")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `defaults:
  yield_stress: 345
  elastic_modulus: 210000
sweep:
  interval: 100
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.Defaults.Fy != 345 {
		t.Errorf("Loaded Fy = %v, want 345", cfg.Defaults.Fy)
	}
	if cfg.Defaults.E != 210000 {
		t.Errorf("Loaded E = %v, want 210000", cfg.Defaults.E)
	}
	if cfg.Sweep.Interval != 100 {
		t.Errorf("Loaded Interval = %v, want 100", cfg.Sweep.Interval)
	}

	// Unspecified values should use defaults
	if cfg.Defaults.N != 1.34 {
		t.Errorf("Loaded N = %v, want 1.34 (default)", cfg.Defaults.N)
	}
	if cfg.Sweep.MaxHeight != 30000 {
		t.Errorf("Loaded MaxHeight = %v, want 30000 (default)", cfg.Sweep.MaxHeight)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "goscol")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("defaults: ["), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}

	// LoadOrDefault swallows the error and hands back defaults
	cfg := LoadOrDefault()
	if cfg.Defaults.Fy != 350 {
		t.Errorf("LoadOrDefault Fy = %v, want 350", cfg.Defaults.Fy)
	}
}

func TestSaveConfig(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := DefaultConfig()
	cfg.Defaults.Fy = 300

	// Save config
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Verify file exists
	configPath := filepath.Join(tempDir, "goscol", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	// Round trip
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if loaded.Defaults.Fy != 300 {
		t.Errorf("Round-tripped Fy = %v, want 300", loaded.Defaults.Fy)
	}
}
