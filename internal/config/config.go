package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/devyntra/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor the environment sets a value
const (
	DefaultAPIURL         = "http://localhost:8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

// Environment variables that override the config file
const (
	EnvAPIURL    = "DEVYNTRA_API_URL"
	EnvHome      = "DEVYNTRA_HOME"
	EnvLogLevel  = "DEVYNTRA_LOG_LEVEL"
	EnvThemeFile = "DEVYNTRA_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	APIURL         string             `yaml:"api_url"`
	RequestTimeout time.Duration      `yaml:"request_timeout"`
	LogLevel       string             `yaml:"log_level"`
	KeyMappings    KeyMappings        `yaml:"key_mappings"`
	ColorScheme    colors.ColorScheme `yaml:"theme"`

	// DataDir holds the local storage database and logs. It comes from the
	// environment only.
	DataDir string `yaml:"-"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from DEVYNTRA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory, then applies .env and
// environment overrides. Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	// A missing .env is the normal case
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("ignoring unreadable .env file", "error", err)
	}

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()

	if config.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		config.DataDir = dir
	}

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
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

// SlogLevel converts LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogDir is where the log file lives
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// applyEnv lets the environment override file values
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvHome); v != "" {
		c.DataDir = v
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "devyntra", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "devyntra", "config.yaml"), nil
}

func defaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine data directory: %w", err)
	}
	return filepath.Join(homeDir, ".devyntra"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
