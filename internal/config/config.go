package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config contains the tunable parameters of the browser and the tool server.
// Use Default() to get sensible defaults, then override as needed.
type Config struct {
	// Logging
	LogPath  string `toml:"log_path"`  // File the JSON log is appended to (default: "logs/pawlist.log")
	LogLevel string `toml:"log_level"` // debug, info, warn or error (default: "info")

	// Terminal
	AltScreen bool `toml:"alt_screen"` // Run full-window in the alternate screen (default: true)
	Mouse     bool `toml:"mouse"`      // Accept mouse taps on rows (default: true)

	// Cursor spring
	SpringFPS       int     `toml:"spring_fps"`       // Animation frames per second (default: 60)
	SpringFrequency float64 `toml:"spring_frequency"` // Angular frequency (default: 12.0)
	SpringDamping   float64 `toml:"spring_damping"`   // Damping ratio (default: 0.9)

	// MCP server identity
	ServerName    string `toml:"server_name"`    // default: "pawlist"
	ServerVersion string `toml:"server_version"` // default: "1.0.0"
}

// Environment overrides applied by Load.
const (
	EnvLogPath  = "PAWLIST_LOG_PATH"
	EnvLogLevel = "PAWLIST_LOG_LEVEL"
)

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		LogPath:  "logs/pawlist.log",
		LogLevel: "info",

		AltScreen: true,
		Mouse:     true,

		// Fast response without overshoot
		SpringFPS:       60,
		SpringFrequency: 12.0,
		SpringDamping:   0.9,

		ServerName:    "pawlist",
		ServerVersion: "1.0.0",
	}
}

// WithLogPath returns a copy of the config with a modified log path.
func (c Config) WithLogPath(path string) Config {
	c.LogPath = path
	return c
}

// WithLogLevel returns a copy of the config with a modified log level.
func (c Config) WithLogLevel(level string) Config {
	c.LogLevel = level
	return c
}

// WithMouse returns a copy of the config with mouse input enabled/disabled.
func (c Config) WithMouse(enabled bool) Config {
	c.Mouse = enabled
	return c
}

// WithAltScreen returns a copy of the config with the alternate screen enabled/disabled.
func (c Config) WithAltScreen(enabled bool) Config {
	c.AltScreen = enabled
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if strings.TrimSpace(c.LogPath) == "" {
		return &ConfigError{Field: "LogPath", Message: "must not be empty"}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "LogLevel", Message: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}
	if c.SpringFPS <= 0 {
		return &ConfigError{Field: "SpringFPS", Message: "must be positive"}
	}
	if c.SpringFrequency <= 0 {
		return &ConfigError{Field: "SpringFrequency", Message: "must be positive"}
	}
	if c.SpringDamping < 0 {
		return &ConfigError{Field: "SpringDamping", Message: "must not be negative"}
	}
	if c.ServerName == "" {
		return &ConfigError{Field: "ServerName", Message: "must not be empty"}
	}
	return nil
}

// Load reads a TOML file over the defaults, applies environment overrides
// and validates the result. An empty path or a missing file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvLogPath); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
