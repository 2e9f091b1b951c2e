// Package day01 recovers calibration values from lines of text: the first
// and last digit of each line form a two-digit number.
package day01

import (
	"regexp"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 1, Parts: []puzzles.PartFunc{Part1, Part2}})
}

var (
	firstDigit = regexp.MustCompile(`(\d)`)
	lastDigit  = regexp.MustCompile(`.*(\d)`)

	spelled      = `\d|one|two|three|four|five|six|seven|eight|nine`
	firstSpelled = regexp.MustCompile(`(` + spelled + `)`)
	lastSpelled  = regexp.MustCompile(`.*(` + spelled + `)`)
)

var names = map[string]int64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

// Part1 sums the calibration values built from numeric digits.
func Part1(in string) (int64, error) {
	return sum(in, firstDigit, lastDigit)
}

// Part2 also accepts spelled-out digits. Names may overlap, so "eightwo"
// ends in two.
func Part2(in string) (int64, error) {
	return sum(in, firstSpelled, lastSpelled)
}

func sum(in string, first, last *regexp.Regexp) (int64, error) {
	var total int64
	for _, line := range input.Lines(in) {
		f := first.FindStringSubmatch(line)
		l := last.FindStringSubmatch(line)
		if f == nil || l == nil {
			return 0, puzzles.Malformed(line, nil)
		}
		total += 10*digit(f[1]) + digit(l[1])
	}

	return total, nil
}

func digit(s string) int64 {
	if v, ok := names[s]; ok {
		return v
	}
	return int64(s[0] - '0')
}
