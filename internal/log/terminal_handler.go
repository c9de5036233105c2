package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// palette holds the escape sequences for one output mode. The zero value
// renders plain text.
type palette struct {
	reset, dim, bold       string
	debug, info, warn, err string
}

var ansiPalette = palette{
	reset: "\033[0m",
	dim:   "\033[2m",
	bold:  "\033[1m",
	debug: "\033[36m",
	info:  "\033[32m",
	warn:  "\033[33m",
	err:   "\033[31m",
}

// TerminalHandler formats log records as compact, optionally coloured lines:
//
//	15:04:05.000 ERR failed to load input path=input.txt
type TerminalHandler struct {
	writer io.Writer
	level  slog.Leveler
	colors palette
	// attrs from WithAttrs, already rendered with the groups open at the time.
	prefix []byte
	groups []string
	mu     *sync.Mutex
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions, color bool) *TerminalHandler {
	var level slog.Leveler = slog.LevelWarn
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	h := &TerminalHandler{
		writer: w,
		level:  level,
		mu:     &sync.Mutex{},
	}
	if color {
		h.colors = ansiPalette
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one line for the record.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	c := h.colors

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(c.dim + ts.Format("15:04:05.000") + c.reset + " ")

	color, label := c.level(r.Level)
	buf.WriteString(color + label + c.reset + " ")
	buf.WriteString(c.bold + r.Message + c.reset)

	buf.Write(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, a, h.groups)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

// WithAttrs returns a handler that prepends attrs to every record.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var buf bytes.Buffer
	buf.Write(h.prefix)
	for _, a := range attrs {
		h.appendAttr(&buf, a, h.groups)
	}
	clone := *h
	clone.prefix = buf.Bytes()
	return &clone
}

// WithGroup returns a handler that qualifies subsequent keys with name.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func (c palette) level(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return c.debug, "DBG"
	case level < slog.LevelWarn:
		return c.info, "INF"
	case level < slog.LevelError:
		return c.warn, "WRN"
	default:
		return c.err, "ERR"
	}
}

func (h *TerminalHandler) appendAttr(buf *bytes.Buffer, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(buf, ga, prefix)
		}
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	buf.WriteString(" " + h.colors.dim + key + "=" + h.colors.reset)
	buf.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	if v.Kind() == slog.KindString {
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"\\=") {
			return fmt.Sprintf("%q", s)
		}
		return s
	}
	return v.String()
}
