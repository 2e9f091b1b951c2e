// Package day10 finds how far the farthest point of the pipe loop through
// the start tile is from the start.
package day10

import (
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/pipes"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 10, Parts: []puzzles.PartFunc{Part1}})
}

// Part1 is half the loop length.
func Part1(in string) (int64, error) {
	n, err := pipes.NewNetwork(input.Lines(in))
	if err != nil {
		return 0, err
	}
	length, err := n.LoopLength()
	if err != nil {
		return 0, err
	}

	return int64(length / 2), nil
}
