// Package rangepairs counts assignment pairs whose ranges nest or overlap.
//
// Each input line holds two inclusive integer ranges, such as "2-4,6-8".
// The client parses a file of such lines and reports how many pairs have one
// range fully inside the other and how many share at least one integer.
//
// Basic usage:
//
//	client := rangepairs.New(rangepairs.WithLogger(logger))
//
//	report, err := client.AnalyzeFile(ctx, "input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Contained(), report.Overlapping())
package rangepairs

import (
	"context"
	"io"
	"log/slog"

	"github.com/helixml/rangepairs/application/service"
	"github.com/helixml/rangepairs/domain/interval"
	"github.com/helixml/rangepairs/infrastructure/input"
	"github.com/helixml/rangepairs/internal/log"
)

// Report is the result of an analysis.
type Report = service.Report

// Client parses and classifies assignment pair files.
type Client struct {
	logger     *slog.Logger
	classifier *service.Classifier
	newRunID   func() string
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		logger:     cfg.logger,
		classifier: service.NewClassifier(cfg.logger),
		newRunID:   cfg.runID,
	}
}

// AnalyzeFile reads the pairs in path and classifies them. A missing or
// unreadable file returns an error wrapping input.ErrFileAccess; a bad line
// returns a *interval.LineError.
func (c *Client) AnalyzeFile(ctx context.Context, path string) (Report, error) {
	ctx = c.withRunID(ctx)
	c.logger.InfoContext(ctx, "loading input", slog.String("path", path))

	pairs, err := input.LoadFile(path)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to load input", slog.String("path", path), slog.Any("error", err))
		return Report{}, err
	}
	return c.classify(ctx, pairs), nil
}

// Analyze reads pairs from r and classifies them.
func (c *Client) Analyze(ctx context.Context, r io.Reader) (Report, error) {
	ctx = c.withRunID(ctx)

	pairs, err := input.ReadPairs(r)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to read input", slog.Any("error", err))
		return Report{}, err
	}
	return c.classify(ctx, pairs), nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

func (c *Client) classify(ctx context.Context, pairs []interval.Pair) Report {
	report := c.classifier.Classify(ctx, pairs)
	c.logger.InfoContext(ctx, "analysis complete",
		slog.Int("pairs", report.Pairs()),
		slog.Int("contained", report.Contained()),
		slog.Int("overlapping", report.Overlapping()),
	)
	return report
}

// withRunID tags ctx with a fresh correlation ID unless it already has one.
func (c *Client) withRunID(ctx context.Context) context.Context {
	if log.CorrelationID(ctx) != "" {
		return ctx
	}
	return log.WithCorrelationID(ctx, c.newRunID())
}
