package rangepairs

import (
	"log/slog"

	"github.com/google/uuid"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	logger *slog.Logger
	runID  func() string
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		logger: slog.Default(),
		runID:  uuid.NewString,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRunIDFunc overrides how per-run correlation IDs are generated.
func WithRunIDFunc(fn func() string) Option {
	return func(c *clientConfig) {
		if fn != nil {
			c.runID = fn
		}
	}
}
