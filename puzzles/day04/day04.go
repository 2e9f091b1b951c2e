// Package day04 scores scratchcards.
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
package day04

import (
	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 4, Parts: []puzzles.PartFunc{Part1, Part2}})
}

// Card is one parsed scratchcard.
type Card struct {
	ID      int   `"Card" @Int ":"`
	Winning []int `@Int* "|"`
	Have    []int `@Int*`
}

var parser = participle.MustBuild[Card]()

// Parse reads one card line.
func Parse(line string) (*Card, error) {
	c, err := parser.ParseString("", line)
	if err != nil {
		return nil, puzzles.Malformed(line, err)
	}

	return c, nil
}

// Matches counts the numbers on the card that are also winning numbers.
func (c *Card) Matches() int {
	win := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = true
	}
	m := 0
	for _, n := range c.Have {
		if win[n] {
			m++
		}
	}

	return m
}

// Points is 0 without matches, else 2^(matches-1).
func (c *Card) Points() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func cards(in string) ([]*Card, error) {
	var out []*Card
	for _, line := range input.Lines(in) {
		c, err := Parse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

// Part1 sums the card points.
func Part1(in string) (int64, error) {
	cs, err := cards(in)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range cs {
		total += c.Points()
	}

	return total, nil
}

// Part2 counts card instances when each card with m matches wins one copy
// of each of the next m cards. Copies never run past the last card.
func Part2(in string) (int64, error) {
	cs, err := cards(in)
	if err != nil {
		return 0, err
	}
	copies := make([]int64, len(cs))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cs {
		for j := i + 1; j <= i+c.Matches() && j < len(cs); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}

	return total, nil
}
