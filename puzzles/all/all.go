// Package all registers every solved day with the puzzles registry.
package all

import (
	_ "github.com/katalvlaran/advent/puzzles/day01"
	_ "github.com/katalvlaran/advent/puzzles/day02"
	_ "github.com/katalvlaran/advent/puzzles/day03"
	_ "github.com/katalvlaran/advent/puzzles/day04"
	_ "github.com/katalvlaran/advent/puzzles/day05"
	_ "github.com/katalvlaran/advent/puzzles/day06"
	_ "github.com/katalvlaran/advent/puzzles/day07"
	_ "github.com/katalvlaran/advent/puzzles/day08"
	_ "github.com/katalvlaran/advent/puzzles/day09"
	_ "github.com/katalvlaran/advent/puzzles/day10"
)
