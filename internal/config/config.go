// Package config loads the planner configuration from an optional YAML file
// and PLANNER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. PLANNER_SERVER_ADDR
const EnvPrefix = "PLANNER"

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Database   DatabaseConfig   `yaml:"database" mapstructure:"database"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Pagination PaginationConfig `yaml:"pagination" mapstructure:"pagination"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
	// Mode is the gin mode: debug, release or test
	Mode                   string `yaml:"mode" mapstructure:"mode"`
	ReadTimeoutSeconds     int    `yaml:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds    int    `yaml:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// DatabaseConfig points at the SQLite file. A leading ~ is expanded.
type DatabaseConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures slog output
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	// File is appended to; empty means stderr
	File string `yaml:"file" mapstructure:"file"`
}

// PaginationConfig bounds list page sizes
type PaginationConfig struct {
	DefaultSize int `yaml:"default_size" mapstructure:"default_size"`
	MaxSize     int `yaml:"max_size" mapstructure:"max_size"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                   ":8080",
			Mode:                   "release",
			ReadTimeoutSeconds:     15,
			WriteTimeoutSeconds:    15,
			ShutdownTimeoutSeconds: 10,
		},
		Database: DatabaseConfig{
			Path: "~/.planner/planner.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Pagination: PaginationConfig{
			DefaultSize: 20,
			MaxSize:     100,
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty, then applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can override it
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("server.read_timeout_seconds", d.Server.ReadTimeoutSeconds)
	v.SetDefault("server.write_timeout_seconds", d.Server.WriteTimeoutSeconds)
	v.SetDefault("server.shutdown_timeout_seconds", d.Server.ShutdownTimeoutSeconds)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("pagination.default_size", d.Pagination.DefaultSize)
	v.SetDefault("pagination.max_size", d.Pagination.MaxSize)
}

// Save writes the config as YAML to path, or the default location when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "planner", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "planner", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.Mode == "" {
		c.Server.Mode = d.Server.Mode
	}
	if c.Server.ReadTimeoutSeconds <= 0 {
		c.Server.ReadTimeoutSeconds = d.Server.ReadTimeoutSeconds
	}
	if c.Server.WriteTimeoutSeconds <= 0 {
		c.Server.WriteTimeoutSeconds = d.Server.WriteTimeoutSeconds
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = d.Server.ShutdownTimeoutSeconds
	}
	if c.Database.Path == "" {
		c.Database.Path = d.Database.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Pagination.DefaultSize <= 0 {
		c.Pagination.DefaultSize = d.Pagination.DefaultSize
	}
	if c.Pagination.MaxSize <= 0 {
		c.Pagination.MaxSize = d.Pagination.MaxSize
	}
	if c.Pagination.DefaultSize > c.Pagination.MaxSize {
		c.Pagination.DefaultSize = c.Pagination.MaxSize
	}
}
