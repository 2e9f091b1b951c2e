// Package day08 walks a desert network of nodes following a left/right
// instruction tape.
//
//	LLR
//
//	AAA = (BBB, BBB)
//	BBB = (AAA, ZZZ)
//	ZZZ = (ZZZ, ZZZ)
package day08

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/lcm"
	"github.com/katalvlaran/advent/puzzles"
	"github.com/katalvlaran/advent/traversal"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 8, Parts: []puzzles.PartFunc{Part1, Part2}})
}

var (
	// ErrNoStarts is returned when no node name ends in A.
	ErrNoStarts = errors.New("day08: no start nodes")
	// ErrUnreachable is returned when a walk could never stop: no stop node
	// is reachable from its start, whatever the tape.
	ErrUnreachable = errors.New("day08: no stop node reachable")
)

// reachable checks that every start can reach a node accepted by stop.
func (n *Network) reachable(starts []*core.Node, stop traversal.StopFunc) error {
	for _, s := range starts {
		if !n.Graph.CanReach(s, func(nd *core.Node) bool { return stop(nd, 0) }) {
			return errors.Wrapf(ErrUnreachable, "from %s", s.Name())
		}
	}

	return nil
}

// Line is one parsed "NAME = (LEFT, RIGHT)" edge line.
type Line struct {
	Name  string `@Name "="`
	Left  string `"(" @Name ","`
	Right string `@Name ")"`
}

var nodeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Name", Pattern: `[0-9A-Za-z]+`},
	{Name: "Punct", Pattern: `[=(),]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parser = participle.MustBuild[Line](
	participle.Lexer(nodeLexer),
	participle.Elide("Whitespace"),
)

// Network is the parsed input.
type Network struct {
	Tape  *traversal.Tape
	Graph *core.Graph
}

// Parse reads the tape line and the node lines after the blank separator.
func Parse(in string) (*Network, error) {
	blocks := input.Blocks(in)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, puzzles.Malformed(in, errors.New("want a tape line, a blank line and node lines"))
	}
	tape, err := traversal.ParseTape(blocks[0][0])
	if err != nil {
		return nil, err
	}

	triples := make([]core.Triple, 0, len(blocks[1]))
	for _, text := range blocks[1] {
		l, err := parser.ParseString("", text)
		if err != nil {
			return nil, puzzles.Malformed(text, err)
		}
		triples = append(triples, core.Triple{Name: l.Name, Left: l.Left, Right: l.Right})
	}
	g, err := core.Build(triples)
	if err != nil {
		return nil, err
	}

	return &Network{Tape: tape, Graph: g}, nil
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(in string) (int64, error) {
	n, err := Parse(in)
	if err != nil {
		return 0, err
	}
	start, err := n.Graph.Find("AAA")
	if err != nil {
		return 0, err
	}
	stop := traversal.NameEquals("ZZZ")
	if err := n.reachable([]*core.Node{start}, stop); err != nil {
		return 0, err
	}
	t, err := traversal.New(start, stop, n.Tape)
	if err != nil {
		return 0, err
	}
	steps, err := t.Run()

	return int64(steps), err
}

// Part2 counts the steps until every walk from a node ending in A stands on
// a node ending in Z at once. Each walk's first hit is taken as its period
// and the periods are combined with an LCM; walks that do not repeat that
// way are reported in the log.
func Part2(in string) (int64, error) {
	n, err := Parse(in)
	if err != nil {
		return 0, err
	}
	starts := n.Graph.Filter(func(nd *core.Node) bool { return traversal.NameHasSuffix("A")(nd, 0) })
	if len(starts) == 0 {
		return 0, ErrNoStarts
	}
	stop := traversal.NameHasSuffix("Z")
	if err := n.reachable(starts, stop); err != nil {
		return 0, err
	}

	lengths, err := traversal.CycleLengths(starts, stop, n.Tape)
	if err != nil {
		return 0, err
	}
	for _, s := range starts {
		r, err := traversal.Analyze(s, stop, n.Tape)
		if err != nil {
			return 0, err
		}
		if !r.Steady {
			klog.Warningf("day08: walk from %s is not periodic in its first hit (lead %d, period %d, hits %v)",
				s.Name(), r.Lead, r.Period, r.Hits)
		}
	}

	periods := make([]int64, len(lengths))
	for i, l := range lengths {
		periods[i] = int64(l)
	}

	return lcm.Of(periods...)
}
