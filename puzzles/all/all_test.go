package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/advent/puzzles"
	_ "github.com/katalvlaran/advent/puzzles/all"
)

func TestAllDaysRegistered(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, puzzles.Days())

	d, ok := puzzles.Lookup(10)
	assert.True(t, ok)
	assert.Len(t, d.Parts, 1)
}

func TestSolve_Day09(t *testing.T) {
	res, err := puzzles.Solve(9, "0 3 6 9 12 15\n1 3 6 10 15 21\n10 13 16 21 30 45\n")
	assert.NoError(t, err)
	assert.Equal(t, 9, res.Day)
	if assert.Len(t, res.Parts, 2) {
		assert.Equal(t, int64(114), res.Parts[0].Value)
		assert.Equal(t, int64(2), res.Parts[1].Value)
	}
}
