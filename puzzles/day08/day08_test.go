package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/puzzles"
	"github.com/katalvlaran/advent/traversal"
)

const sampleRL = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const sampleLLR = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const sampleGhosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func TestPart1(t *testing.T) {
	for in, want := range map[string]int64{sampleRL: 2, sampleLLR: 6} {
		got, err := Part1(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(sampleGhosts)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)
}

// TestPart2_MatchesLockstep cross-checks the LCM with a simultaneous walk.
func TestPart2_MatchesLockstep(t *testing.T) {
	n, err := Parse(sampleGhosts)
	require.NoError(t, err)
	starts := n.Graph.Filter(func(nd *core.Node) bool { return nd.Name()[2] == 'A' })
	res, err := traversal.Walk(starts, traversal.All(traversal.NameHasSuffix("Z")), n.Tape, traversal.Lockstep)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Steps)
}

func TestParse(t *testing.T) {
	n, err := Parse(sampleLLR)
	require.NoError(t, err)
	assert.Equal(t, "LLR", n.Tape.String())
	assert.Equal(t, 3, n.Graph.Len())

	bbb, err := n.Graph.Find("BBB")
	require.NoError(t, err)
	assert.Equal(t, "AAA", bbb.Left().Name())
	assert.Equal(t, "ZZZ", bbb.Right().Name())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse("LR\n\nAAA = BBB, CCC\n")
	assert.ErrorIs(t, err, puzzles.ErrMalformedLine)

	_, err = Parse("LXR\n\nAAA = (AAA, AAA)\n")
	assert.ErrorIs(t, err, traversal.ErrBadInstruction)

	_, err = Parse("AAA = (AAA, AAA)\n")
	assert.ErrorIs(t, err, puzzles.ErrMalformedLine)

	_, err = Part1(sampleGhosts)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = Part2("LR\n\nBBB = (ZZZ, ZZZ)\nZZZ = (ZZZ, ZZZ)\n")
	assert.ErrorIs(t, err, ErrNoStarts)
}

func TestUnreachable(t *testing.T) {
	_, err := Part1("L\n\nAAA = (BBB, BBB)\nBBB = (AAA, AAA)\nZZZ = (ZZZ, ZZZ)\n")
	assert.ErrorIs(t, err, ErrUnreachable)

	_, err = Part2("L\n\n11A = (11B, 11B)\n11B = (11A, 11A)\n22A = (22Z, 22Z)\n22Z = (22A, 22A)\n")
	assert.ErrorIs(t, err, ErrUnreachable)
}
