// Package config loads retype's INI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/ini.v1"
)

// Config is the merged file configuration. Flags override it in cmd/retype.
type Config struct {
	Layout       string
	CustomLayout string
	LogLevel     string
	LogFile      string
	Passages     string
	Passage      string
	ShowPreview  bool
}

// ConfigError reports a value present in the file that cannot be used.
type ConfigError struct {
	Section string
	Key     string
	msg     string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config: [%s] %s: %s", e.Section, e.Key, e.msg)
}

const (
	defaultLayout   = "dubeolsik"
	defaultLogLevel = "info"
)

func Default() Config {
	return Config{
		Layout:      defaultLayout,
		LogLevel:    defaultLogLevel,
		ShowPreview: true,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/retype/config.ini or its home fallback.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "retype", "config.ini")
}

// Load reads path on top of the defaults. A missing file is not an error.
//
//	[layout]
//	name = dubeolsik
//	custom = ~/.config/retype/keys.toml
//
//	[log]
//	level = debug
//	file = /tmp/retype.log
//
//	[drill]
//	passages = ~/poems.toml
//	passage = 서시
//	show_preview = true
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	layout := file.Section("layout")
	cfg.Layout = layout.Key("name").MustString(cfg.Layout)
	cfg.CustomLayout = expandHome(layout.Key("custom").String())

	logSection := file.Section("log")
	cfg.LogLevel = strings.ToLower(logSection.Key("level").MustString(cfg.LogLevel))
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, ConfigError{Section: "log", Key: "level", msg: fmt.Sprintf("unknown level %q", cfg.LogLevel)}
	}
	cfg.LogFile = expandHome(logSection.Key("file").String())

	drill := file.Section("drill")
	cfg.Passages = expandHome(drill.Key("passages").String())
	cfg.Passage = drill.Key("passage").String()
	if drill.HasKey("show_preview") {
		preview, err := drill.Key("show_preview").Bool()
		if err != nil {
			return cfg, ConfigError{Section: "drill", Key: "show_preview", msg: err.Error()}
		}
		cfg.ShowPreview = preview
	}

	return cfg, nil
}

func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
