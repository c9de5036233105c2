package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldCount is the number of integers on every input line.
const fieldCount = 4

func isSeparator(r rune) bool {
	return r == ',' || r == '-'
}

// Tokenize splits a line on every ',' or '-'. Adjacent separators produce
// empty tokens, which ParsePair rejects.
func Tokenize(line string) []string {
	tokens := make([]string, 0, fieldCount)
	start := 0
	for i, r := range line {
		if isSeparator(r) {
			tokens = append(tokens, line[start:i])
			start = i + 1
		}
	}
	return append(tokens, line[start:])
}

// ParsePair parses a line such as "2-4,6-8" into a Pair. Surrounding
// whitespace is ignored. Errors are *LineError values wrapping
// ErrMalformedLine or ErrInvertedRange; the line number is left at zero for
// the caller to fill in.
func ParsePair(line string) (Pair, error) {
	text := strings.TrimSpace(line)
	tokens := Tokenize(text)
	if len(tokens) != fieldCount {
		return Pair{}, &LineError{
			Text: text,
			Err:  fmt.Errorf("%w: want %d integers, got %d fields", ErrMalformedLine, fieldCount, len(tokens)),
		}
	}

	var nums [fieldCount]int
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Pair{}, &LineError{
				Text: text,
				Err:  fmt.Errorf("%w: field %d: %w", ErrMalformedLine, i+1, err),
			}
		}
		nums[i] = n
	}

	a := NewRange(nums[0], nums[1])
	b := NewRange(nums[2], nums[3])
	for _, r := range []Range{a, b} {
		if err := r.Validate(); err != nil {
			return Pair{}, &LineError{Text: text, Err: err}
		}
	}
	return NewPair(a, b), nil
}
