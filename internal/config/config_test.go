package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	cfg, err = Load("")
	if err != nil || cfg.Layout != "dubeolsik" || !cfg.ShowPreview {
		t.Fatalf("expected defaults for empty path, got %+v (%v)", cfg, err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[layout]
name = latin
custom = /etc/retype/keys.toml

[log]
level = DEBUG
file = /tmp/retype.log

[drill]
passages = /srv/poems.toml
passage = 서시
show_preview = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Config{
		Layout:       "latin",
		CustomLayout: "/etc/retype/keys.toml",
		LogLevel:     "debug",
		LogFile:      "/tmp/retype.log",
		Passages:     "/srv/poems.toml",
		Passage:      "서시",
		ShowPreview:  false,
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	cfg, err := Load(writeConfig(t, "[drill]\npassages = ~/poems.toml\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "poems.toml"); cfg.Passages != want {
		t.Fatalf("expected %q, got %q", want, cfg.Passages)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"level":   "[log]\nlevel = loud\n",
		"preview": "[drill]\nshow_preview = maybe\n",
	}
	for name, contents := range cases {
		_, err := Load(writeConfig(t, contents))
		var cfgErr ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("%s: expected ConfigError, got %v", name, err)
		}
	}
}

func TestLoadDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory path")
	}
}
