package core_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/core"
)

// sampleTriples is the three-node network from the puzzle statement.
func sampleTriples() []core.Triple {
	return []core.Triple{
		{Name: "AAA", Left: "BBB", Right: "BBB"},
		{Name: "BBB", Left: "AAA", Right: "ZZZ"},
		{Name: "ZZZ", Left: "ZZZ", Right: "ZZZ"},
	}
}

func TestBuild_ForwardReferences(t *testing.T) {
	g, err := core.Build(sampleTriples())
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"AAA", "BBB", "ZZZ"}, g.Names())

	aaa, err := g.Find("AAA")
	require.NoError(t, err)
	bbb, err := g.Find("BBB")
	require.NoError(t, err)
	zzz, err := g.Find("ZZZ")
	require.NoError(t, err)

	// AAA refers to BBB before BBB is declared; both edges share one instance.
	assert.Same(t, bbb, aaa.Left())
	assert.Same(t, bbb, aaa.Right())
	assert.Same(t, aaa, bbb.Child(core.Left))
	assert.Same(t, zzz, bbb.Child(core.Right))
	assert.Same(t, zzz, zzz.Left())
	assert.Equal(t, "BBB = (AAA, ZZZ)", bbb.String())
}

func TestFind_IdentityStable(t *testing.T) {
	g, err := core.Build(sampleTriples())
	require.NoError(t, err)

	first, err := g.Find("BBB")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := g.Find("BBB")
		require.NoError(t, err)
		assert.Same(t, first, again)
	}
}

func TestBuild_NoDanglingEdges(t *testing.T) {
	triples := []core.Triple{
		{Name: "11A", Left: "11B", Right: "XXX"},
		{Name: "11B", Left: "XXX", Right: "11Z"},
		{Name: "11Z", Left: "11B", Right: "XXX"},
	}
	g, err := core.Build(triples)
	require.NoError(t, err)

	// XXX is only ever a target: it is materialised once, after the sources.
	assert.Equal(t, []string{"11A", "11B", "11Z", "XXX"}, g.Names())
	for _, n := range g.Nodes() {
		require.NotNil(t, n.Left(), n.Name())
		require.NotNil(t, n.Right(), n.Name())
		assert.True(t, g.Has(n.Left().Name()))
		assert.True(t, g.Has(n.Right().Name()))
	}

	xxx, err := g.Find("XXX")
	require.NoError(t, err)
	assert.Same(t, xxx, xxx.Left())
	assert.Same(t, xxx, xxx.Right())
}

func TestBuild_Errors(t *testing.T) {
	_, err := core.Build([]core.Triple{{Name: "", Left: "A", Right: "B"}})
	assert.True(t, errors.Is(err, core.ErrEmptyName))

	_, err = core.Build([]core.Triple{{Name: "A", Left: "", Right: "B"}})
	assert.True(t, errors.Is(err, core.ErrEmptyName))

	_, err = core.Build([]core.Triple{
		{Name: "A", Left: "A", Right: "B"},
		{Name: "A", Left: "B", Right: "B"},
	})
	assert.True(t, errors.Is(err, core.ErrDuplicateNode))

	// Identical redeclaration folds into one node.
	g, err := core.Build([]core.Triple{
		{Name: "A", Left: "A", Right: "A"},
		{Name: "A", Left: "A", Right: "A"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
}

func TestFind_NotFound(t *testing.T) {
	g, err := core.Build(sampleTriples())
	require.NoError(t, err)

	n, err := g.Find("QQQ")
	assert.Nil(t, n)
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
	assert.Contains(t, err.Error(), "QQQ")
}

func TestFilter_SuffixSelection(t *testing.T) {
	g, err := core.Build([]core.Triple{
		{Name: "11A", Left: "11B", Right: "XXX"},
		{Name: "22A", Left: "22B", Right: "XXX"},
		{Name: "11B", Left: "XXX", Right: "11Z"},
	})
	require.NoError(t, err)

	starts := g.Filter(func(n *core.Node) bool { return n.Name()[2] == 'A' })
	require.Len(t, starts, 2)
	assert.Equal(t, "11A", starts[0].Name())
	assert.Equal(t, "22A", starts[1].Name())
}

func TestParseSide(t *testing.T) {
	s, err := core.ParseSide('L')
	require.NoError(t, err)
	assert.Equal(t, core.Left, s)

	s, err = core.ParseSide('R')
	require.NoError(t, err)
	assert.Equal(t, core.Right, s)
	assert.Equal(t, "R", s.String())

	_, err = core.ParseSide('X')
	assert.True(t, errors.Is(err, core.ErrBadSide))
	assert.Nil(t, (&core.Node{}).Child(core.Side(7)))
}

func TestReachable(t *testing.T) {
	g, err := core.Build([]core.Triple{
		{Name: "AAA", Left: "BBB", Right: "BBB"},
		{Name: "BBB", Left: "AAA", Right: "ZZZ"},
		{Name: "ZZZ", Left: "ZZZ", Right: "ZZZ"},
		{Name: "XXX", Left: "XXX", Right: "XXX"},
	})
	require.NoError(t, err)
	aaa, _ := g.Find("AAA")
	xxx, _ := g.Find("XXX")

	var names []string
	for _, n := range g.Reachable(aaa) {
		names = append(names, n.Name())
	}
	assert.Equal(t, []string{"AAA", "BBB", "ZZZ"}, names)

	isZ := func(n *core.Node) bool { return n.Name() == "ZZZ" }
	assert.True(t, g.CanReach(aaa, isZ))
	assert.False(t, g.CanReach(xxx, isZ))
}
