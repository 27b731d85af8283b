// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/csheth/studypal/internal/studyapi"
)

// Config holds the application configuration.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

// ServiceConfig points the client at the backend.
type ServiceConfig struct {
	Endpoint string `toml:"endpoint"` // e.g., "http://localhost:8000"
	Timeout  string `toml:"timeout"`  // e.g., "3m"
}

// LoggingConfig holds diagnostic log settings.
type LoggingConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	AltScreen bool `toml:"alt_screen"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			Endpoint: studyapi.DefaultBaseURL,
			Timeout:  "3m",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "info",
		},
		UI: UIConfig{
			AltScreen: true,
		},
	}
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "studypal.log"
	}
	return filepath.Join(dir, "studypal", "studypal.log")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "studypal", "config.toml")
}

// LoadFrom starts with defaults, overlays the file if it exists, then applies
// env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Logging.File = expandPath(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STUDYPAL_ENDPOINT"); v != "" {
		cfg.Service.Endpoint = v
	}
	if v := os.Getenv("STUDYPAL_TIMEOUT"); v != "" {
		cfg.Service.Timeout = v
	}
	if v := os.Getenv("STUDYPAL_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("STUDYPAL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	endpoint := strings.TrimSpace(c.Service.Endpoint)
	if endpoint == "" {
		return errors.New("service endpoint must be set")
	}
	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("service endpoint must be an http(s) URL, got %q", c.Service.Endpoint)
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Logging.File == "" {
		return errors.New("logging file must be set")
	}
	return nil
}

// RequestTimeout parses the service timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(c.Service.Timeout))
	if err != nil {
		return 0, fmt.Errorf("service timeout must be a duration like \"90s\", got %q", c.Service.Timeout)
	}
	if d <= 0 {
		return 0, fmt.Errorf("service timeout must be positive, got %s", d)
	}
	return d, nil
}

// LogLevel parses the logging level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.Logging.Level)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel, fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}
	return level, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
