package commons

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_EmptyPathUsesEnvDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port == 0 {
		t.Errorf("expected a default server port")
	}
	if cfg.Auth.BcryptCost == 0 {
		t.Errorf("expected a default bcrypt cost")
	}
	if cfg.Inventory.LowDemandWindow == 0 {
		t.Errorf("expected a default low-demand window")
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 9090\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090 from file, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug from file, got %s", cfg.Log.Level)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Auth.TokenTTL == 0 {
		t.Errorf("expected token TTL default preserved")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Errorf("expected error for missing config file")
	}
}
