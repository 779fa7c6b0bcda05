// Package config loads the settings of the gridtext command
// from environment variables with defaults and validates them.
package config

import (
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
)

// Config holds all settings of the gridtext command.
// Command line flags override the loaded values.
type Config struct {
	Logging LoggingConfig
	Render  RenderConfig
}

// LoggingConfig holds the slog settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: warn)
	Level string `env:"GRIDTEXT_LOG_LEVEL" default:"warn"`

	// Format is text or json (default: text)
	Format string `env:"GRIDTEXT_LOG_FORMAT" default:"text"`
}

// RenderConfig holds the settings for decoding, parsing and rendering.
type RenderConfig struct {
	// ColumnWidth is the fixed width of text output columns (default: 10)
	ColumnWidth int `env:"GRIDTEXT_COLUMN_WIDTH" default:"10"`

	// CSVSeparator is a single character or "auto" (default: ",")
	CSVSeparator string `env:"GRIDTEXT_CSV_SEPARATOR" default:","`

	// Encodings are tried in order to decode input files,
	// empty means gridtext.DefaultEncodings
	Encodings []string `env:"GRIDTEXT_ENCODINGS"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("GRIDTEXT_LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("GRIDTEXT_LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if c.Render.ColumnWidth <= 0 {
		errs = append(errs, fmt.Sprintf("GRIDTEXT_COLUMN_WIDTH (%d) must be positive", c.Render.ColumnWidth))
	}
	if c.Render.CSVSeparator != "auto" && len(c.Render.CSVSeparator) != 1 {
		errs = append(errs, fmt.Sprintf("GRIDTEXT_CSV_SEPARATOR (%q) must be a single character or auto", c.Render.CSVSeparator))
	}
	for _, name := range c.Render.Encodings {
		if _, err := charset.GetEncoding(name); err != nil {
			errs = append(errs, fmt.Sprintf("GRIDTEXT_ENCODINGS: %s", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Logging: {Level: %q, Format: %q}, Render: {ColumnWidth: %d, CSVSeparator: %q, Encodings: %q}}",
		c.Logging.Level, c.Logging.Format,
		c.Render.ColumnWidth, c.Render.CSVSeparator, c.Render.Encodings,
	)
}
