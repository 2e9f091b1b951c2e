// Package day07 ranks Camel Cards hands and totals their winnings.
//
// A hand is scored in one of two modes. Standard reads J as a jack; Jokers
// reads it as a wildcard that joins the most common other card and ranks
// below every other card when breaking ties.
package day07

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 7, Parts: []puzzles.PartFunc{Part1, Part2}})
}

// ScoringMode selects how jacks are read.
type ScoringMode int

const (
	Standard ScoringMode = iota
	Jokers
)

// String returns the mode name.
func (m ScoringMode) String() string {
	if m == Jokers {
		return "jokers"
	}
	return "standard"
}

// Kind is the type of a hand, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// cardOrder lists card labels from weakest to strongest per mode.
var cardOrder = map[ScoringMode]string{
	Standard: "23456789TJQKA",
	Jokers:   "J23456789TQKA",
}

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int64
}

// counter groups a hand's card counts, largest first.
type counter func(cards string) []int

// strategies maps each mode to its grouping rule.
var strategies = map[ScoringMode]counter{
	Standard: standardCounts,
	Jokers:   jokerCounts,
}

func tally(cards string, skip rune) []int {
	by := make(map[rune]int, 5)
	for _, c := range cards {
		if c != skip {
			by[c]++
		}
	}
	out := make([]int, 0, len(by))
	for _, n := range by {
		out = append(out, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}

func standardCounts(cards string) []int { return tally(cards, 0) }

func jokerCounts(cards string) []int {
	counts := tally(cards, 'J')
	jokers := strings.Count(cards, "J")
	if len(counts) == 0 {
		return []int{jokers}
	}
	counts[0] += jokers

	return counts
}

// Kind classifies h under mode.
func (h Hand) Kind(mode ScoringMode) Kind {
	c := strategies[mode](h.Cards)
	switch {
	case c[0] == 5:
		return FiveOfAKind
	case c[0] == 4:
		return FourOfAKind
	case c[0] == 3 && c[1] == 2:
		return FullHouse
	case c[0] == 3:
		return ThreeOfAKind
	case c[0] == 2 && c[1] == 2:
		return TwoPair
	case c[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Less orders a before b by kind, then card by card.
func Less(a, b Hand, mode ScoringMode) bool {
	ka, kb := a.Kind(mode), b.Kind(mode)
	if ka != kb {
		return ka < kb
	}
	order := cardOrder[mode]
	for i := 0; i < len(a.Cards); i++ {
		ra, rb := strings.IndexByte(order, a.Cards[i]), strings.IndexByte(order, b.Cards[i])
		if ra != rb {
			return ra < rb
		}
	}

	return false
}

// Parse reads "CARDS BID" lines.
func Parse(in string) ([]Hand, error) {
	var hands []Hand
	for _, line := range input.Lines(in) {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 5 || strings.Trim(f[0], cardOrder[Standard]) != "" {
			return nil, puzzles.Malformed(line, nil)
		}
		bid, err := input.Number[int64](f[1])
		if err != nil {
			return nil, puzzles.Malformed(line, err)
		}
		hands = append(hands, Hand{Cards: f[0], Bid: bid})
	}

	return hands, nil
}

// Winnings ranks hands under mode and sums bid × rank.
func Winnings(hands []Hand, mode ScoringMode) int64 {
	sorted := append([]Hand(nil), hands...)
	sort.SliceStable(sorted, func(i, j int) bool { return Less(sorted[i], sorted[j], mode) })
	var total int64
	for i, h := range sorted {
		total += h.Bid * int64(i+1)
	}

	return total
}

func solve(in string, mode ScoringMode) (int64, error) {
	hands, err := Parse(in)
	if err != nil {
		return 0, errors.Wrapf(err, "day07 %s", mode)
	}

	return Winnings(hands, mode), nil
}

// Part1 totals winnings with jacks.
func Part1(in string) (int64, error) { return solve(in, Standard) }

// Part2 totals winnings with jokers.
func Part2(in string) (int64, error) { return solve(in, Jokers) }
