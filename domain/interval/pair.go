package interval

import "fmt"

// Pair is the two ranges read from a single input line.
type Pair struct {
	line int
	a    Range
	b    Range
}

// NewPair creates a Pair without a source line.
func NewPair(a, b Range) Pair {
	return Pair{a: a, b: b}
}

// WithLine returns a copy of the pair tagged with its 1-based source line.
func (p Pair) WithLine(line int) Pair {
	p.line = line
	return p
}

// Line returns the 1-based source line, or 0 if unknown.
func (p Pair) Line() int { return p.line }

// A returns the first range.
func (p Pair) A() Range { return p.a }

// B returns the second range.
func (p Pair) B() Range { return p.b }

// FullyContains reports whether either range is nested inside the other.
func (p Pair) FullyContains() bool {
	return p.a.Contains(p.b) || p.b.Contains(p.a)
}

// Overlaps reports whether the two ranges share any integer.
func (p Pair) Overlaps() bool {
	return p.a.Overlaps(p.b)
}

// Swap returns the pair with its ranges reversed.
func (p Pair) Swap() Pair {
	p.a, p.b = p.b, p.a
	return p
}

// String renders the pair the way it appears in input files.
func (p Pair) String() string {
	return fmt.Sprintf("%s,%s", p.a, p.b)
}
