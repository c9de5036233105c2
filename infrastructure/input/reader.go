// Package input reads assignment pair files from disk.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/helixml/rangepairs/domain/interval"
)

// ErrFileAccess indicates the input path could not be opened or read.
var ErrFileAccess = errors.New("input file not accessible")

// ReadPairs parses every non-blank line of r into a Pair. The first
// malformed line aborts the read; no partial result is returned.
func ReadPairs(r io.Reader) ([]interval.Pair, error) {
	var pairs []interval.Pair

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		pair, err := interval.ParsePair(line)
		if err != nil {
			var lineErr *interval.LineError
			if errors.As(err, &lineErr) {
				lineErr.Line = lineNo
			}
			return nil, err
		}
		pairs = append(pairs, pair.WithLine(lineNo))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	return pairs, nil
}

// LoadFile opens path, parses it with ReadPairs and closes it again on every
// return path.
func LoadFile(path string) (pairs []interval.Pair, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrFileAccess, path, closeErr)
		}
	}()

	pairs, err = ReadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return pairs, nil
}
