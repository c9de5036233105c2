package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: WARN)
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// NoColor disables ANSI colours in pretty output.
	// Env: NO_COLOR
	NoColor bool `envconfig:"NO_COLOR"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix("")
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "RANGEPAIRS" reads RANGEPAIRS_LOG_LEVEL instead of LOG_LEVEL.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	opts := []AppConfigOption{WithNoColor(e.NoColor)}
	if e.LogLevel != "" {
		opts = append(opts, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		opts = append(opts, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	return NewAppConfigWithOptions(opts...)
}

func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
