package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boundedRanges enumerates every valid range with bounds in [lo, hi].
func boundedRanges(lo, hi int) []Range {
	var out []Range
	for s := lo; s <= hi; s++ {
		for e := s; e <= hi; e++ {
			out = append(out, NewRange(s, e))
		}
	}
	return out
}

func TestNewRange(t *testing.T) {
	r := NewRange(3, 7)

	assert.Equal(t, 3, r.Start())
	assert.Equal(t, 7, r.End())
	assert.Equal(t, "3-7", r.String())
}

func TestRange_Validate(t *testing.T) {
	require.NoError(t, NewRange(4, 4).Validate())
	require.NoError(t, NewRange(1, 9).Validate())

	err := NewRange(9, 1).Validate()
	require.ErrorIs(t, err, ErrInvertedRange)
	assert.Contains(t, err.Error(), "9-1")
}

func TestRange_Contains(t *testing.T) {
	outer := NewRange(2, 8)

	assert.True(t, outer.Contains(NewRange(3, 7)))
	assert.True(t, outer.Contains(NewRange(2, 8)))
	assert.True(t, outer.Contains(NewRange(8, 8)))
	assert.False(t, outer.Contains(NewRange(1, 5)))
	assert.False(t, outer.Contains(NewRange(5, 9)))
	assert.False(t, NewRange(3, 7).Contains(outer))
}

func TestRange_Overlaps(t *testing.T) {
	assert.True(t, NewRange(5, 7).Overlaps(NewRange(7, 9)))
	assert.True(t, NewRange(2, 6).Overlaps(NewRange(4, 8)))
	assert.True(t, NewRange(6, 6).Overlaps(NewRange(6, 6)))
	assert.False(t, NewRange(2, 3).Overlaps(NewRange(4, 5)))
	assert.False(t, NewRange(4, 5).Overlaps(NewRange(2, 3)))
}

func TestRange_SelfContainment(t *testing.T) {
	for _, r := range boundedRanges(-3, 5) {
		assert.True(t, r.Contains(r), "range %s should contain itself", r)
		assert.True(t, r.Overlaps(r), "range %s should overlap itself", r)
	}
}

func TestRange_OverlapMatchesPointwiseForm(t *testing.T) {
	ranges := boundedRanges(0, 6)
	for _, a := range ranges {
		for _, b := range ranges {
			s1, e1, s2, e2 := a.Start(), a.End(), b.Start(), b.End()
			pointwise := (s2 <= s1 && s1 <= e2) || (s1 <= s2 && s2 <= e1)
			assert.Equal(t, pointwise, a.Overlaps(b), "%s vs %s", a, b)
		}
	}
}
