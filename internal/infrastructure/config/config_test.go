package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if *cfg != *Default() {
		t.Errorf("LoadConfig() = %+v, want %+v", *cfg, *Default())
	}
	if cfg.Session.StopWord != "end" {
		t.Errorf("Session.StopWord = %q, want end", cfg.Session.StopWord)
	}
}

func TestLoadConfig_MergesEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app-config.yaml", `
session:
  stopWord: end
display:
  storeHeader: "Store:"
  basketHeader: "Basket:"
log:
  level: warn
`)
	writeFile(t, dir, "test.yaml", `
log:
  level: debug
`)
	t.Setenv("CONFIG_ENV", "test")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Display.StoreHeader != "Store:" {
		t.Errorf("Display.StoreHeader = %q, want Store:", cfg.Display.StoreHeader)
	}
	if cfg.Display.BasketHeader != "Basket:" {
		t.Errorf("Display.BasketHeader = %q, want Basket:", cfg.Display.BasketHeader)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("CONFIG_ENV", "")
	t.Setenv("TALLY_SESSION_STOP_WORD", "quit")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Session.StopWord != "quit" {
		t.Errorf("Session.StopWord = %q, want quit", cfg.Session.StopWord)
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app-config.yaml", "session: [unclosed")
	t.Setenv("CONFIG_ENV", "")

	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig() error = nil, want error for malformed yaml")
	}
}
