// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"
)

// Config holds all application configuration.
// All settings can be configured via environment variables and overridden
// by command-line flags.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Preview PreviewConfig
	Logging LoggingConfig
}

// InputConfig holds input table settings.
type InputConfig struct {
	// Path is the table to read (default: the schema's default input file)
	Path string `env:"METAGEN_INPUT" envAlt:"INPUT_PATH"`

	// Schema is the key of the registered input schema (default: final)
	Schema string `env:"METAGEN_SCHEMA" default:"final"`

	// Delimiter is the CSV field separator; "tab" or "\t" for tabs (default: ,)
	Delimiter string `env:"METAGEN_DELIMITER" default:","`

	// Sheet is the worksheet read from .xlsx inputs (default: active sheet)
	Sheet string `env:"METAGEN_SHEET"`
}

// OutputConfig holds settings for generated documents.
type OutputConfig struct {
	// Dir is where the numbered files are written (default: .)
	Dir string `env:"METAGEN_OUTPUT_DIR" default:"."`

	// FileMode is the octal permission of generated files (default: 0644)
	FileMode string `env:"METAGEN_FILE_MODE" default:"0644"`
}

// PreviewConfig holds settings for the preview command.
type PreviewConfig struct {
	// Limit is the number of rows previewed when -n is not given (default: 3)
	Limit int `env:"METAGEN_PREVIEW_LIMIT" default:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *InputConfig) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "tab", `\t`, "\t":
		return '\t', nil
	}

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter %q is not allowed", c.Delimiter)
	}
	return r, nil
}

// Mode parses FileMode as an octal permission.
func (c *OutputConfig) Mode() (os.FileMode, error) {
	m, err := strconv.ParseUint(c.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode %q: %w", c.FileMode, err)
	}
	if m == 0 || m > 0o777 {
		return 0, fmt.Errorf("file mode %q must be between 0001 and 0777", c.FileMode)
	}
	return os.FileMode(m), nil
}
