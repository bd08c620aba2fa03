package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = "docsite.toml"

type Config struct {
	Port string `toml:"port"`

	// Content
	DocsRoot     string `toml:"docs_root"`
	NavFile      string `toml:"nav_file"`      // static navigation manifest; empty means scan DocsRoot
	DefaultEntry string `toml:"default_entry"` // /docs/ redirects here

	// Presentation
	SiteTitle     string `toml:"site_title"`
	SearchEnabled bool   `toml:"search_enabled"`

	// Server
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	LogLevel        string        `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:            "3521",
		DocsRoot:        "docs",
		DefaultEntry:    "getting-started/introduction",
		SiteTitle:       "GamanJS | Web Application Framework",
		SearchEnabled:   true,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins). The TOML
// file is CONFIG_FILE, or docsite.toml when present.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if explicit {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.DocsRoot = envOr("DOCS_ROOT", cfg.DocsRoot)
	cfg.NavFile = envOr("NAV_FILE", cfg.NavFile)
	cfg.DefaultEntry = envOr("DEFAULT_ENTRY", cfg.DefaultEntry)
	cfg.SiteTitle = envOr("SITE_TITLE", cfg.SiteTitle)
	cfg.SearchEnabled = envBool("SEARCH_ENABLED", cfg.SearchEnabled)
	cfg.ShutdownTimeout = envDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		cfg.Port = "3521"
	}
	cfg.DefaultEntry = strings.Trim(cfg.DefaultEntry, "/")

	return cfg, nil
}

func (c Config) Validate() error {
	info, err := os.Stat(c.DocsRoot)
	if err != nil {
		return fmt.Errorf("DOCS_ROOT: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("DOCS_ROOT %q is not a directory", c.DocsRoot)
	}
	if c.NavFile != "" {
		if _, err := os.Stat(c.NavFile); err != nil {
			return fmt.Errorf("NAV_FILE: %w", err)
		}
	}
	if strings.Count(c.DefaultEntry, "/") != 1 {
		return fmt.Errorf("DEFAULT_ENTRY must be category/name, got %q", c.DefaultEntry)
	}
	return nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
