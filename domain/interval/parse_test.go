package interval

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"2", "4", "6", "8"}, Tokenize("2-4,6-8"))
	assert.Equal(t, []string{"1", "3", "5", "9"}, Tokenize("1,3-5,9"))
	assert.Equal(t, []string{"10", "20", "30", "40"}, Tokenize("10-20-30-40"))
	assert.Equal(t, []string{"", "3", "4", "5", "6"}, Tokenize("-3-4,5-6"))
	assert.Equal(t, []string{""}, Tokenize(""))
}

func TestParsePair(t *testing.T) {
	p, err := ParsePair("  2-4,6-8\r\n")
	require.NoError(t, err)

	assert.Equal(t, NewRange(2, 4), p.A())
	assert.Equal(t, NewRange(6, 8), p.B())
}

func TestParsePair_MixedSeparators(t *testing.T) {
	p, err := ParsePair("1,3-5,9")
	require.NoError(t, err)

	assert.Equal(t, NewRange(1, 3), p.A())
	assert.Equal(t, NewRange(5, 9), p.B())
}

func TestParsePair_Malformed(t *testing.T) {
	for _, line := range []string{
		"2-4,6",
		"2-4,6-8,10",
		"a-4,6-8",
		"2-4,,6-8",
		"-3-4,5-6",
		"2 -4,6-8",
		"",
		"99999999999999999999-1,2-3",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := ParsePair(line)
			require.ErrorIs(t, err, ErrMalformedLine)

			var lineErr *LineError
			require.True(t, errors.As(err, &lineErr))
			assert.Equal(t, 0, lineErr.Line)
		})
	}
}

func TestParsePair_NonIntegerWrapsStrconv(t *testing.T) {
	_, err := ParsePair("x-4,6-8")

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "x", numErr.Num)
}

func TestParsePair_Inverted(t *testing.T) {
	_, err := ParsePair("4-2,6-8")
	require.ErrorIs(t, err, ErrInvertedRange)
	assert.NotErrorIs(t, err, ErrMalformedLine)

	_, err = ParsePair("2-4,8-6")
	require.ErrorIs(t, err, ErrInvertedRange)
}

func TestLineError_Error(t *testing.T) {
	err := &LineError{Line: 3, Text: "2-4,6", Err: ErrMalformedLine}
	assert.Equal(t, `line 3 "2-4,6": malformed line`, err.Error())

	err = &LineError{Text: "2-4,6", Err: ErrMalformedLine}
	assert.Equal(t, `"2-4,6": malformed line`, err.Error())
}
