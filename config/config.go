package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"leavetime/timelog"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "LEAVETIME_CONFIG"
	EnvTarget     = "LEAVETIME_TARGET"
	EnvBreak      = "LEAVETIME_BREAK"
	EnvLogLevel   = "LEAVETIME_LOG_LEVEL"
	EnvLogFile    = "LEAVETIME_LOG_FILE"
)

// Config holds the user's settings.
type Config struct {
	// Target is the daily working time as H:MM.
	Target string `toml:"target"`
	// Break is the break allowance as H:MM.
	Break    string `toml:"break"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Target:   "08:00",
		Break:    "01:00",
		LogLevel: "info",
	}
}

// DefaultPath returns the config file path from the environment
// or defaults to <user config dir>/leavetime/config.toml.
func DefaultPath() (string, error) {
	if envValue := os.Getenv(EnvConfigPath); envValue != "" {
		return filepath.Clean(envValue), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "leavetime", "config.toml"), nil
}

// Load builds the configuration: defaults, then a .env file in the working
// directory, then the TOML file at path (DefaultPath when empty), then
// environment overrides. Missing files are not an error.
// The result is not validated; callers apply their own overrides first and
// then call Validate.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvTarget); v != "" {
		c.Target = v
	}
	if v := os.Getenv(EnvBreak); v != "" {
		c.Break = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
}

// Validate checks that target and break are H:MM durations and the log
// level is known.
func (c *Config) Validate() error {
	if _, err := timelog.ParseHM(c.Target); err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	if c.Break != "" {
		if _, err := timelog.ParseHM(c.Break); err != nil {
			return fmt.Errorf("invalid break: %w", err)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
