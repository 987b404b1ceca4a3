package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Registry.BaseURL != "https://ezid.cdlib.org" {
		t.Errorf("expected default registry URL https://ezid.cdlib.org, got %s", cfg.Registry.BaseURL)
	}
	if cfg.Registry.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Registry.Timeout)
	}
	if cfg.Resolver.BaseURL != "http://dx.doi.org" {
		t.Errorf("expected default resolver URL http://dx.doi.org, got %s", cfg.Resolver.BaseURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing registry base URL",
			modify:  func(c *Config) { c.Registry.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Registry.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "debug log level",
			modify:  func(c *Config) { c.Log.Level = "debug" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
registry:
  base_url: "https://ezid.test.example.org"
  username: "apitest"
  password: "apitest"
  shoulder: "10.5072/FK2"
  timeout: 10s
resolver:
  base_url: "http://doi.test.example.org"
log:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Registry.BaseURL != "https://ezid.test.example.org" {
		t.Errorf("expected registry URL https://ezid.test.example.org, got %s", cfg.Registry.BaseURL)
	}
	if cfg.Registry.Username != "apitest" {
		t.Errorf("expected username apitest, got %s", cfg.Registry.Username)
	}
	if cfg.Registry.Shoulder != "10.5072/FK2" {
		t.Errorf("expected shoulder 10.5072/FK2, got %s", cfg.Registry.Shoulder)
	}
	if cfg.Registry.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Registry.Timeout)
	}
	if cfg.Resolver.BaseURL != "http://doi.test.example.org" {
		t.Errorf("expected resolver URL http://doi.test.example.org, got %s", cfg.Resolver.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Registry: RegistryConfig{
			Username: "apitest",
			Shoulder: "10.5072/FK2",
		},
		Log: LogConfig{Level: "warn"},
	})

	if base.Registry.BaseURL != "https://ezid.cdlib.org" {
		t.Errorf("merge should keep default base URL, got %s", base.Registry.BaseURL)
	}
	if base.Registry.Username != "apitest" {
		t.Errorf("merge should take username, got %s", base.Registry.Username)
	}
	if base.Registry.Shoulder != "10.5072/FK2" {
		t.Errorf("merge should take shoulder, got %s", base.Registry.Shoulder)
	}
	if base.Log.Level != "warn" {
		t.Errorf("merge should take log level, got %s", base.Log.Level)
	}
}

func TestMergeNil(t *testing.T) {
	base := DefaultConfig()
	base.Merge(nil)

	if base.Registry.BaseURL != "https://ezid.cdlib.org" {
		t.Error("merging nil should leave config unchanged")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	loader := NewLoader(nil)
	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}

	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("expected user config to exist: %v", err)
	}
	if loaded.Registry.BaseURL != "https://ezid.cdlib.org" {
		t.Errorf("expected default registry URL in created config, got %s", loaded.Registry.BaseURL)
	}

	// A second run must leave an edited file alone.
	loaded.Registry.Shoulder = "10.5072/FK2"
	if err := loaded.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}
	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() second run error = %v", err)
	}
	reloaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if reloaded.Registry.Shoulder != "10.5072/FK2" {
		t.Errorf("expected existing config to be kept, got shoulder %s", reloaded.Registry.Shoulder)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Registry.Shoulder = "10.5072/FK2"
	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Registry.Shoulder != "10.5072/FK2" {
		t.Errorf("expected shoulder to survive round trip, got %s", loaded.Registry.Shoulder)
	}
}
