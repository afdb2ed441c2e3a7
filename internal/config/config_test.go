package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if cfg.StyleURL != DefaultStyleURL {
		t.Errorf("StyleURL = %q, want default", cfg.StyleURL)
	}
	if cfg.LocaleURL != DefaultLocaleURL {
		t.Errorf("LocaleURL = %q, want default", cfg.LocaleURL)
	}
	if cfg.CiteprocBinary != "" {
		t.Errorf("CiteprocBinary = %q, want empty", cfg.CiteprocBinary)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "style_url: https://example.com/style.csl\nciteproc_binary: /usr/local/bin/citeproc\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if cfg.StyleURL != "https://example.com/style.csl" {
		t.Errorf("StyleURL = %q", cfg.StyleURL)
	}
	if cfg.CiteprocBinary != "/usr/local/bin/citeproc" {
		t.Errorf("CiteprocBinary = %q", cfg.CiteprocBinary)
	}
	// Unset fields still get defaults.
	if cfg.LocaleURL != DefaultLocaleURL {
		t.Errorf("LocaleURL = %q, want default", cfg.LocaleURL)
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("style_url: [unterminated"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Error("loadFrom() expected error for malformed YAML")
	}
}

func TestPath_RespectsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	want := filepath.Join("/custom/config", ConfigDir, ConfigFile)
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
