package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFileName  = ".lox.yaml"
	historyFileName = ".lox_history"
)

// replConfig holds REPL presentation settings. Resolution order: defaults,
// then $HOME/.lox.yaml when present, then LOX_* environment variables
// (optionally loaded from a .env file in the working directory).
type replConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
}

func defaultConfig() *replConfig {
	home, _ := os.UserHomeDir()
	return &replConfig{
		Prompt:      "==> ",
		HistoryFile: filepath.Join(home, historyFileName),
		Color:       true,
	}
}

// loadConfig never fails: anything unreadable is logged and defaults apply.
func loadConfig() *replConfig {
	cfg := defaultConfig()

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, configFileName)
		data, rerr := os.ReadFile(path)
		switch {
		case rerr == nil:
			if uerr := yaml.Unmarshal(data, cfg); uerr != nil {
				slog.Warn("ignoring malformed config file", "path", path, "error", uerr)
				cfg = defaultConfig()
			}
		case !errors.Is(rerr, fs.ErrNotExist):
			slog.Warn("cannot read config file", "path", path, "error", rerr)
		}
	}

	if derr := godotenv.Load(); derr != nil && !errors.Is(derr, fs.ErrNotExist) {
		slog.Debug("no .env loaded", "error", derr)
	}

	if v := os.Getenv("LOX_PROMPT"); v != "" {
		cfg.Prompt = v
	}
	if v := os.Getenv("LOX_HISTORY"); v != "" {
		cfg.HistoryFile = v
	}
	if v := os.Getenv("LOX_COLOR"); v != "" {
		if b, perr := strconv.ParseBool(v); perr == nil {
			cfg.Color = b
		} else {
			slog.Warn("ignoring invalid LOX_COLOR", "value", v)
		}
	}
	return cfg
}
