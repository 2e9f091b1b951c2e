package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzles"
)

const sample = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(114), got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestSequence(t *testing.T) {
	s := Sequence{10, 13, 16, 21, 30, 45}
	assert.Equal(t, Sequence{3, 3, 5, 9, 15}, s.Diff())
	assert.Equal(t, int64(68), s.Next())
	assert.Equal(t, int64(5), s.Prev())

	// a single non-zero value differences to an empty, all-zero sequence
	assert.Equal(t, int64(7), Sequence{7}.Next())
	assert.Equal(t, int64(-4), Sequence{-4, -4}.Prev())
}

func TestParse_Malformed(t *testing.T) {
	_, err := Part1("1 2 x\n")
	assert.ErrorIs(t, err, puzzles.ErrMalformedLine)

	_, err = Part1("1 2\n\n3 4\n")
	assert.ErrorIs(t, err, puzzles.ErrMalformedLine)
}
