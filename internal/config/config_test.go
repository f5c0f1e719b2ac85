package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading without config file: %v", err)
	}
	if cfg.General.Currency != "$" {
		t.Fatalf("Currency = %q, want $", cfg.General.Currency)
	}
	if !cfg.Appearance.Color {
		t.Fatal("Color default = false, want true")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "€"
	cfg.General.DataPath = "/tmp/custom/daybook.db"
	cfg.Appearance.Color = false

	if err := Save(cfg); err != nil {
		t.Fatalf("saving: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestDataPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	if got := DataPath(Config{}); got != filepath.Join(xdg, "daybook", "daybook.db") {
		t.Fatalf("default DataPath = %q", got)
	}

	cfg := Config{}
	cfg.General.DataPath = "/elsewhere/daybook.db"
	if got := DataPath(cfg); got != "/elsewhere/daybook.db" {
		t.Fatalf("override DataPath = %q", got)
	}
}
