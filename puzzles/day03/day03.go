// Package day03 reads an engine schematic: numbers laid out on a grid of
// symbols, where a number next to a symbol (diagonals included) is a part
// number.
package day03

import (
	"strconv"
	"unicode"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 3, Parts: []puzzles.PartFunc{Part1, Part2}})
}

// Number is a run of digits on one row.
type Number struct {
	Value int64
	Cells []gridgraph.Vector
}

// Schematic is a parsed grid with its numbers indexed by cell.
type Schematic struct {
	grid    *gridgraph.Grid
	numbers []Number
	owner   map[gridgraph.Vector]int
}

// Parse builds a Schematic from the input text.
func Parse(in string) (*Schematic, error) {
	g, err := gridgraph.New(input.Lines(in))
	if err != nil {
		return nil, err
	}
	s := &Schematic{grid: g, owner: make(map[gridgraph.Vector]int)}
	for _, run := range g.ConnectedComponents(unicode.IsDigit, gridgraph.ConnRow) {
		digits := make([]rune, len(run))
		for i, v := range run {
			digits[i] = g.At(v)
			s.owner[v] = len(s.numbers)
		}
		n, err := strconv.ParseInt(string(digits), 10, 64)
		if err != nil {
			return nil, puzzles.Malformed(string(g.Cells[run[0].Row]), err)
		}
		s.numbers = append(s.numbers, Number{Value: n, Cells: run})
	}

	return s, nil
}

func isSymbol(r rune) bool { return r != '.' && !unicode.IsDigit(r) }

// Numbers returns every number in row-major order.
func (s *Schematic) Numbers() []Number { return s.numbers }

// PartNumbers returns the numbers touching at least one symbol.
func (s *Schematic) PartNumbers() []Number {
	var out []Number
	for _, n := range s.numbers {
		if s.touchesSymbol(n) {
			out = append(out, n)
		}
	}

	return out
}

func (s *Schematic) touchesSymbol(n Number) bool {
	for _, v := range n.Cells {
		for _, nb := range s.grid.Neighbors(v, gridgraph.Conn8) {
			if isSymbol(s.grid.At(nb)) {
				return true
			}
		}
	}

	return false
}

// adjacent returns the distinct numbers around cell v, in discovery order.
func (s *Schematic) adjacent(v gridgraph.Vector) []Number {
	seen := make(map[int]bool)
	var out []Number
	for _, nb := range s.grid.Neighbors(v, gridgraph.Conn8) {
		if i, ok := s.owner[nb]; ok && !seen[i] {
			seen[i] = true
			out = append(out, s.numbers[i])
		}
	}

	return out
}

// GearRatios returns, for every '*' next to exactly two numbers, their product.
func (s *Schematic) GearRatios() []int64 {
	var out []int64
	s.grid.Each(func(v gridgraph.Vector, r rune) {
		if r != '*' {
			return
		}
		if nums := s.adjacent(v); len(nums) == 2 {
			out = append(out, nums[0].Value*nums[1].Value)
		}
	})

	return out
}

// Part1 sums the part numbers.
func Part1(in string) (int64, error) {
	s, err := Parse(in)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, n := range s.PartNumbers() {
		total += n.Value
	}

	return total, nil
}

// Part2 sums the gear ratios.
func Part2(in string) (int64, error) {
	s, err := Parse(in)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range s.GearRatios() {
		total += r
	}

	return total, nil
}
