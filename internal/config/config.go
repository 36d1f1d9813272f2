package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the itemplate CLI
type Config struct {
	// Item input
	ItemsFile string `env:"ITEMS_FILE" envDefault:"items.json"`

	// Formatting configuration
	Locale string `env:"LOCALE" envDefault:"en-US"`

	// Modifier configuration
	ModifierMode string `env:"MODIFIER_MODE" envDefault:"strict"`
	CELEnabled   bool   `env:"CEL_ENABLED" envDefault:"false"`

	// Redis configuration (event publishing, optional)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:""`
	RedisPassword string `env:"REDIS_PASS" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	EventStream   string `env:"EVENT_STREAM" envDefault:"itemplate.events"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ItemsFile == "" {
		return fmt.Errorf("ITEMS_FILE is required")
	}

	if c.Locale == "" {
		return fmt.Errorf("LOCALE is required")
	}

	if !isValidModifierMode(c.ModifierMode) {
		return fmt.Errorf("MODIFIER_MODE must be one of: strict, permissive")
	}

	if c.RedisAddr != "" && c.EventStream == "" {
		return fmt.Errorf("EVENT_STREAM is required when REDIS_ADDR is set")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

// isValidModifierMode checks if the modifier mode is valid
func isValidModifierMode(mode string) bool {
	return mode == "strict" || mode == "permissive"
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config (without sensitive data)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{ItemsFile=%s, Locale=%s, ModifierMode=%s, CELEnabled=%v, "+
			"RedisAddr=%s, RedisDB=%d, EventStream=%s, LogLevel=%s}",
		c.ItemsFile,
		c.Locale,
		c.ModifierMode,
		c.CELEnabled,
		c.RedisAddr,
		c.RedisDB,
		c.EventStream,
		c.LogLevel,
	)
}
