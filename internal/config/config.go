// Package config loads settings from defaults, .env, todo.toml and TODO_* env vars.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Default values.
const (
	DefaultDBPath   = "todo.db"
	DefaultTheme    = "classic"
	DefaultLang     = "en"
	DefaultLogLevel = "warn"
	DefaultFile     = "todo.toml"
	EnvPrefix       = "TODO"
)

// Config holds the full configuration for todo.
type Config struct {
	DBPath   string `toml:"db_path" split_words:"true"`
	Theme    string `toml:"theme"`
	Lang     string `toml:"lang"`
	LogLevel string `toml:"log_level" split_words:"true"`
}

// Default returns a Config with every field at its default.
func Default() Config {
	return Config{
		DBPath:   DefaultDBPath,
		Theme:    DefaultTheme,
		Lang:     DefaultLang,
		LogLevel: DefaultLogLevel,
	}
}

// Load builds the configuration. An empty path means the optional DefaultFile
// in the working directory; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("env: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(b), cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.DBPath = strings.TrimSpace(c.DBPath)
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Lang = strings.ToLower(strings.TrimSpace(c.Lang))
	if c.Lang == "" {
		c.Lang = DefaultLang
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate rejects languages without a message catalog.
// Unknown themes and log levels fall back to defaults where they are used.
func (c Config) Validate() error {
	switch c.Lang {
	case "en", "ja":
		return nil
	}
	return fmt.Errorf("unsupported lang %q (want en or ja)", c.Lang)
}
