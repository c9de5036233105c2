package service

import (
	"context"
	"log/slog"

	"github.com/helixml/rangepairs/domain/interval"
)

// Report holds the counts produced by classifying a set of pairs.
type Report struct {
	pairs       int
	contained   int
	overlapping int
}

// NewReport creates a Report from precomputed counts.
func NewReport(pairs, contained, overlapping int) Report {
	return Report{pairs: pairs, contained: contained, overlapping: overlapping}
}

// Pairs returns how many pairs were classified.
func (r Report) Pairs() int { return r.pairs }

// Contained returns how many pairs have one range nested in the other.
func (r Report) Contained() int { return r.contained }

// Overlapping returns how many pairs share at least one integer.
func (r Report) Overlapping() int { return r.overlapping }

// Classifier counts containment and overlap across assignment pairs.
type Classifier struct {
	logger *slog.Logger
}

// NewClassifier creates a Classifier. A nil logger falls back to slog.Default.
func NewClassifier(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{logger: logger}
}

// Classify tests every pair independently and returns the totals.
func (c *Classifier) Classify(ctx context.Context, pairs []interval.Pair) Report {
	var contained, overlapping int
	for _, p := range pairs {
		if p.FullyContains() {
			contained++
		}
		if p.Overlaps() {
			overlapping++
		}
	}

	c.logger.DebugContext(ctx, "classified pairs",
		slog.Int("pairs", len(pairs)),
		slog.Int("contained", contained),
		slog.Int("overlapping", overlapping),
	)
	return NewReport(len(pairs), contained, overlapping)
}
