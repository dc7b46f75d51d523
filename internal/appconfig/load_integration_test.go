// internal/appconfig/load_integration_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultPath(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}

	payload := `{ "pretty": true, "logFormat": "json" }`
	path := filepath.Join(configDir, "config.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Chdir(tempDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Pretty {
		t.Fatalf("expected pretty from file")
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json log format, got %q", cfg.LogFormat)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.json")
	if err := os.WriteFile(path, []byte(`{ "logLevel": "warn", "defaultBinNumber": 5 }`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MLMON_LOGLEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("expected env override error, got %q", cfg.LogLevel)
	}
	if cfg.DefaultBinNumber != 5 {
		t.Fatalf("expected file value 5, got %d", cfg.DefaultBinNumber)
	}
}

func TestLoadEnvFile(t *testing.T) {
	tempDir := t.TempDir()
	envPath := filepath.Join(tempDir, "test.env")
	if err := os.WriteFile(envPath, []byte("MLMON_DEFAULTBINMETHOD=sturges\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	// Registered with t.Setenv so the variable is restored afterwards; unset
	// it so godotenv is free to fill it in.
	t.Setenv("MLMON_DEFAULTBINMETHOD", "")
	if err := os.Unsetenv("MLMON_DEFAULTBINMETHOD"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	if err := LoadEnv(envPath, filepath.Join(tempDir, "missing.env")); err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	cfg, err := Load(filepath.Join(tempDir, "none.json"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DefaultBinMethod != "sturges" {
		t.Fatalf("expected sturges from env file, got %q", cfg.DefaultBinMethod)
	}
}
