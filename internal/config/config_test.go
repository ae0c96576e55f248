package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output.Format != FormatText {
		t.Errorf("expected text format, got %q", cfg.Output.Format)
	}
	if !cfg.Output.Metrics {
		t.Error("expected metrics on by default")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	data := "[output]\nformat = \"html\"\nmetrics = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != FormatHTML {
		t.Errorf("expected html format, got %q", cfg.Output.Format)
	}
	if cfg.Output.Metrics {
		t.Error("expected metrics off")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected json format, got %q", cfg.Output.Format)
	}
	if !cfg.Output.Metrics {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown format")
	}
}
