package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the drill looks for its config when no path is
// given on the command line.
const DefaultConfigPath = ".drill/config.yaml"

// Config holds all drill configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Exercise content
	Exercise ExerciseConfig `yaml:"exercise"`

	// Toast timing
	Notifications NotificationConfig `yaml:"notifications"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ExerciseConfig selects the exercise content.
type ExerciseConfig struct {
	// CatalogPath points at a YAML catalog. Empty means the built-in one.
	CatalogPath string `yaml:"catalog_path"`
}

// NotificationConfig controls how long toasts stay on screen.
type NotificationConfig struct {
	ResetDuration  string `yaml:"reset_duration"`
	ResultDuration string `yaml:"result_duration"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "officerdrill",
		Version: "1.0.0",

		Notifications: NotificationConfig{
			ResetDuration:  "2s",
			ResultDuration: "6s",
		},

		UI: *DefaultUIConfig(),

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   ".drill/logs/drill.log",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults (with environment overrides applied).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("DRILL_CATALOG"); path != "" {
		c.Exercise.CatalogPath = path
	}
	if v := os.Getenv("DRILL_DARK_MODE"); v != "" {
		if dark, err := strconv.ParseBool(v); err == nil {
			c.UI.DarkMode = dark
		}
	}
	if level := os.Getenv("DRILL_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv("DRILL_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = debug
		}
	}
}

// GetResetDuration returns how long the reset toast is shown.
func (c *Config) GetResetDuration() time.Duration {
	d, err := time.ParseDuration(c.Notifications.ResetDuration)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// GetResultDuration returns how long the check-answers toast is shown.
func (c *Config) GetResultDuration() time.Duration {
	d, err := time.ParseDuration(c.Notifications.ResultDuration)
	if err != nil || d <= 0 {
		return 6 * time.Second
	}
	return d
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging formats.
var ValidLogFormats = []string{"text", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	for name, raw := range map[string]string{
		"reset_duration":  c.Notifications.ResetDuration,
		"result_duration": c.Notifications.ResultDuration,
	} {
		if raw == "" {
			continue
		}
		if _, err := time.ParseDuration(raw); err != nil {
			return fmt.Errorf("invalid notifications.%s %q: %w", name, raw, err)
		}
	}
	if c.UI.TrayCapacity < 0 {
		return fmt.Errorf("invalid ui.tray_capacity: %d", c.UI.TrayCapacity)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
