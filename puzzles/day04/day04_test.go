package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzles"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(13), got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got)
}

func TestParse(t *testing.T) {
	c, err := Parse("Card   12: 1 2 3 | 3 2 9")
	require.NoError(t, err)
	assert.Equal(t, 12, c.ID)
	assert.Equal(t, []int{1, 2, 3}, c.Winning)
	assert.Equal(t, []int{3, 2, 9}, c.Have)
	assert.Equal(t, 2, c.Matches())
	assert.Equal(t, int64(2), c.Points())

	_, err = Parse("Card 1: 1 2 3")
	assert.ErrorIs(t, err, puzzles.ErrMalformedLine)
}
