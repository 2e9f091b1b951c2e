// Package day09 extrapolates sequences by repeated differencing.
package day09

import (
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 9, Parts: []puzzles.PartFunc{Part1, Part2}})
}

// Sequence is a list of readings.
type Sequence []int64

func (s Sequence) zero() bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// Diff returns the differences between neighbouring values.
func (s Sequence) Diff() Sequence {
	if len(s) < 2 {
		return nil
	}
	out := make(Sequence, len(s)-1)
	for i := range out {
		out[i] = s[i+1] - s[i]
	}

	return out
}

// Next returns the value that would follow s. An empty sequence yields 0.
func (s Sequence) Next() int64 {
	if s.zero() {
		return 0
	}
	return s[len(s)-1] + s.Diff().Next()
}

// Prev returns the value that would precede s.
func (s Sequence) Prev() int64 {
	if s.zero() {
		return 0
	}
	return s[0] - s.Diff().Prev()
}

func parse(in string) ([]Sequence, error) {
	var out []Sequence
	for _, line := range input.Lines(in) {
		nums, err := input.Numbers[int64](line)
		if err != nil || len(nums) == 0 {
			return nil, puzzles.Malformed(line, err)
		}
		out = append(out, nums)
	}

	return out, nil
}

func sum(in string, f func(Sequence) int64) (int64, error) {
	seqs, err := parse(in)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, s := range seqs {
		total += f(s)
	}

	return total, nil
}

// Part1 sums the next value of every sequence.
func Part1(in string) (int64, error) { return sum(in, Sequence.Next) }

// Part2 sums the previous value of every sequence.
func Part2(in string) (int64, error) { return sum(in, Sequence.Prev) }
