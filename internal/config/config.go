package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/thenoetrevino/todos/internal/config/colors"
	"github.com/thenoetrevino/todos/internal/logging"
	"gopkg.in/yaml.v3"
)

// ColorScheme is the theme section of the config
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	LogLevel    string        `yaml:"log_level" json:"log_level"`
	Storage     StorageConfig `yaml:"storage" json:"storage"`
	KeyMappings KeyMappings   `yaml:"key_mappings" json:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme" json:"theme"`
}

const redactedSecret = "********"

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Redacted returns a copy of c safe to print, with secrets masked
func (c *Config) Redacted() *Config {
	shown := *c
	if shown.Storage.Redis.Password != "" {
		shown.Storage.Redis.Password = redactedSecret
	}
	return &shown
}

// Level returns the configured log level
func (c *Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}

// loadThemeFile merges the theme found in TODOS_THEME_FILE over the config
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TODOS_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme" json:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		if themeConfig.Theme.Preset != "" {
			config.ColorScheme.Preset = themeConfig.Theme.Preset
		}
		config.ColorScheme.MergeFrom(themeConfig.Theme, true)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		return finish(&Config{})
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return finish(&Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	return finish(&config)
}

// finish layers theme file, environment and defaults over a parsed config
func finish(config *Config) (*Config, error) {
	loadThemeFile(config)
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv applies TODOS_* environment overrides
func (c *Config) applyEnv() error {
	if v := os.Getenv("TODOS_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = Backend(v)
	}
	if v := os.Getenv("TODOS_DB_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("TODOS_NAMESPACE"); v != "" {
		c.Storage.Namespace = v
	}
	if v := os.Getenv("TODOS_REDIS_ADDR"); v != "" {
		c.Storage.Redis.Addr = v
	}
	if v := os.Getenv("TODOS_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TODOS_REDIS_DB %q: %w", v, err)
		}
		c.Storage.Redis.DB = db
	}
	if v := os.Getenv("TODOS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate reports configuration errors
func (c *Config) Validate() error {
	return c.Storage.Validate()
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config as YAML to path, creating parent directories
func (c *Config) SaveFile(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todos", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todos", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.Storage.applyDefaults()
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
