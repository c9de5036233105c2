// Package config provides application configuration.
package config

import (
	"log/slog"
	"strings"
)

// Default configuration values.
const (
	DefaultLogLevel  = "WARN"
	DefaultLogFormat = LogFormatPretty
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the main application configuration. It only affects
// diagnostics; the computation itself has no settings.
type AppConfig struct {
	logLevel  string
	logFormat LogFormat
	noColor   bool
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:  DefaultLogLevel,
		logFormat: DefaultLogFormat,
	}
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// NoColor reports whether ANSI colours are disabled in pretty output.
func (c AppConfig) NoColor() bool { return c.noColor }

// LogAttrs returns the settings as slog attributes for a startup log line.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.Bool("no_color", c.noColor),
	}
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = strings.ToUpper(level) }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithNoColor disables colour in pretty output.
func WithNoColor(noColor bool) AppConfigOption {
	return func(c *AppConfig) { c.noColor = noColor }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	cfg := NewAppConfig()
	return cfg.Apply(opts...)
}

// Apply returns a copy of the config with the options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
