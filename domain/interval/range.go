// Package interval provides the inclusive integer ranges that make up an
// assignment pair, and the containment and overlap predicates over them.
package interval

import "fmt"

// Range is an inclusive integer interval [start, end]. Immutable value object.
type Range struct {
	start int
	end   int
}

// NewRange creates a Range. It does not check that start <= end; use
// Validate when the bounds come from untrusted input.
func NewRange(start, end int) Range {
	return Range{start: start, end: end}
}

// Start returns the lower bound.
func (r Range) Start() int { return r.start }

// End returns the upper bound.
func (r Range) End() int { return r.end }

// Validate returns ErrInvertedRange if start is greater than end.
func (r Range) Validate() error {
	if r.start > r.end {
		return fmt.Errorf("%w: %s", ErrInvertedRange, r)
	}
	return nil
}

// Contains reports whether other lies entirely within r, bounds included.
func (r Range) Contains(other Range) bool {
	return other.start >= r.start && other.end <= r.end
}

// Overlaps reports whether r and other share at least one integer.
func (r Range) Overlaps(other Range) bool {
	return r.start <= other.end && other.start <= r.end
}

// String renders the range the way it appears in input files.
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.start, r.end)
}
