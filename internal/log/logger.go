// Package log provides structured diagnostic logging with per-run
// correlation IDs. Output goes to stderr so stdout stays reserved for
// results.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/helixml/rangepairs/internal/config"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// CorrelationIDKey is the context key holding the run's correlation ID.
const CorrelationIDKey ContextKey = "correlation_id"

// Logger wraps slog.Logger and injects context values into every record.
type Logger struct {
	handler slog.Handler
	logger  *slog.Logger
}

// NewLogger creates a Logger writing to stderr based on configuration.
func NewLogger(cfg config.AppConfig) *Logger {
	return NewLoggerWithWriter(os.Stderr, cfg)
}

// NewLoggerWithWriter creates a Logger that writes to w.
func NewLoggerWithWriter(w io.Writer, cfg config.AppConfig) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel())}

	var base slog.Handler
	switch cfg.LogFormat() {
	case config.LogFormatJSON:
		base = slog.NewJSONHandler(w, opts)
	default:
		base = newTerminalHandler(w, opts, !cfg.NoColor())
	}

	handler := contextHandler{Handler: base}
	return &Logger{
		handler: handler,
		logger:  slog.New(handler),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Handler returns the underlying slog.Handler.
func (l *Logger) Handler() slog.Handler {
	return l.handler
}

// Slog returns the underlying slog.Logger. Records logged through its
// *Context methods carry the correlation ID.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// With returns a new Logger with additional attributes.
func (l *Logger) With(args ...any) *Logger {
	child := l.logger.With(args...)
	return &Logger{
		handler: child.Handler(),
		logger:  child,
	}
}

// WithCorrelationID adds a correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// CorrelationID extracts the correlation ID from context.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

// contextHandler adds context values to records before delegating.
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := CorrelationID(ctx); id != "" {
		r.AddAttrs(slog.String(string(CorrelationIDKey), id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name)}
}

// Configure builds a logger from cfg and installs it as the slog default.
func Configure(cfg config.AppConfig) *Logger {
	l := NewLogger(cfg)
	slog.SetDefault(l.logger)
	return l
}
