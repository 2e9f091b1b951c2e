// Package day02 checks games of cubes drawn from a bag.
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
package day02

import (
	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 2, Parts: []puzzles.PartFunc{Part1, Part2}})
}

// Game is one parsed input line.
type Game struct {
	ID    int     `"Game" @Int ":"`
	Draws []*Draw `@@ (";" @@)*`
}

// Draw is one handful of cubes.
type Draw struct {
	Cubes []*Cubes `@@ ("," @@)*`
}

// Cubes is a count of one colour.
type Cubes struct {
	Count  int    `@Int`
	Colour string `@("red" | "green" | "blue")`
}

// Set holds a count per colour. A colour missing from a draw counts zero.
type Set struct {
	Red, Green, Blue int
}

var parser = participle.MustBuild[Game]()

// Parse reads one game line.
func Parse(line string) (*Game, error) {
	g, err := parser.ParseString("", line)
	if err != nil {
		return nil, puzzles.Malformed(line, err)
	}

	return g, nil
}

// Set totals the cubes of d by colour.
func (d *Draw) Set() Set {
	var s Set
	for _, c := range d.Cubes {
		switch c.Colour {
		case "red":
			s.Red += c.Count
		case "green":
			s.Green += c.Count
		case "blue":
			s.Blue += c.Count
		}
	}

	return s
}

// Minimum returns the fewest cubes of each colour that make g possible.
func (g *Game) Minimum() Set {
	var m Set
	for _, d := range g.Draws {
		s := d.Set()
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}

	return m
}

// Within reports whether no colour of s exceeds limit.
func (s Set) Within(limit Set) bool {
	return s.Red <= limit.Red && s.Green <= limit.Green && s.Blue <= limit.Blue
}

// Power is the product of the three counts.
func (s Set) Power() int64 {
	return int64(s.Red) * int64(s.Green) * int64(s.Blue)
}

// Bag is the content the games are checked against.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

func games(in string) ([]*Game, error) {
	lines := input.Lines(in)
	out := make([]*Game, 0, len(lines))
	for _, line := range lines {
		g, err := Parse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}

	return out, nil
}

// Part1 sums the ids of games possible with Bag.
func Part1(in string) (int64, error) {
	gs, err := games(in)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range gs {
		if g.Minimum().Within(Bag) {
			total += int64(g.ID)
		}
	}

	return total, nil
}

// Part2 sums the power of each game's minimum set.
func Part2(in string) (int64, error) {
	gs, err := games(in)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range gs {
		total += g.Minimum().Power()
	}

	return total, nil
}
