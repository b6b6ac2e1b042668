package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"tally/internal/log"
)

type Config struct {
	// Sheets
	Title string

	// Shell
	Prompt  string
	NoColor bool

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Title: getEnv("TALLY_TITLE", "Tally Sheet"),

		Prompt:  getEnv("TALLY_PROMPT", "tally> "),
		NoColor: getEnvBool("NO_COLOR", false),

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", log.FormatPretty),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.Title) == "" {
		errors = append(errors, "sheet title cannot be empty")
	} else if !utf8.ValidString(c.Title) {
		errors = append(errors, "sheet title must be valid UTF-8")
	}

	if c.Prompt == "" {
		errors = append(errors, "shell prompt cannot be empty")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	validFormats := []string{log.FormatText, log.FormatJSON, log.FormatPretty}
	isValidFormat := false
	for _, format := range validFormats {
		if c.LogFormat == format {
			isValidFormat = true
			break
		}
	}
	if !isValidFormat {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// LoggerConfig derives the logger settings. Validate must have passed.
func (c *Config) LoggerConfig() log.Config {
	cfg := log.DefaultConfig()
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		cfg.Level = level
	}
	cfg.Format = c.LogFormat
	cfg.NoColor = c.NoColor
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		// NO_COLOR convention: any non-empty value disables colour.
		return true
	}
	return defaultValue
}
