// Package day05 follows seeds through a chain of almanac range maps down to
// a location number.
package day05

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 5, Parts: []puzzles.PartFunc{Part1, Part2}})
}

// ErrNoSeeds is returned when the seeds line lists nothing.
var ErrNoSeeds = errors.New("day05: no seed numbers found")

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int64
}

// Rule maps [Source, Source+Length) onto [Dest, Dest+Length).
type Rule struct {
	Dest, Source, Length int64
}

// Map is a named group of rules. Keys outside every rule map to themselves.
type Map struct {
	Name  string
	Rules []Rule
}

// Almanac is the parsed input.
type Almanac struct {
	Seeds []int64
	Maps  []Map
}

// Parse reads the seeds line and the blocks of map rules that follow.
func Parse(in string) (*Almanac, error) {
	blocks := input.Blocks(in)
	if len(blocks) == 0 {
		return nil, ErrNoSeeds
	}
	head := blocks[0][0]
	rest, ok := strings.CutPrefix(head, "seeds:")
	if !ok {
		return nil, puzzles.Malformed(head, nil)
	}
	seeds, err := input.Numbers[int64](rest)
	if err != nil {
		return nil, puzzles.Malformed(head, err)
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	a := &Almanac{Seeds: seeds}
	for _, block := range blocks[1:] {
		name, ok := strings.CutSuffix(block[0], " map:")
		if !ok {
			return nil, puzzles.Malformed(block[0], nil)
		}
		m := Map{Name: name}
		for _, line := range block[1:] {
			nums, err := input.Numbers[int64](line)
			if err != nil || len(nums) != 3 {
				return nil, puzzles.Malformed(line, err)
			}
			m.Rules = append(m.Rules, Rule{Dest: nums[0], Source: nums[1], Length: nums[2]})
		}
		sort.Slice(m.Rules, func(i, j int) bool { return m.Rules[i].Source < m.Rules[j].Source })
		a.Maps = append(a.Maps, m)
	}

	return a, nil
}

// Get maps a single key.
func (m Map) Get(key int64) int64 {
	for _, r := range m.Rules {
		if key >= r.Source && key < r.Source+r.Length {
			return r.Dest + key - r.Source
		}
	}

	return key
}

// Apply maps every interval in in, splitting intervals that straddle rule
// boundaries. Rules are sorted by Source.
func (m Map) Apply(in []Interval) []Interval {
	var out []Interval
	for _, iv := range in {
		cur := iv.Start
		for _, r := range m.Rules {
			if cur >= iv.End {
				break
			}
			lo, hi := r.Source, r.Source+r.Length
			if hi <= cur || lo >= iv.End {
				continue
			}
			// 1) identity gap before the rule
			if cur < lo {
				out = append(out, Interval{cur, lo})
				cur = lo
			}
			// 2) overlap, shifted
			end := min(hi, iv.End)
			shift := r.Dest - r.Source
			out = append(out, Interval{cur + shift, end + shift})
			cur = end
		}
		// 3) identity tail
		if cur < iv.End {
			out = append(out, Interval{cur, iv.End})
		}
	}

	return out
}

// Location follows seed through every map.
func (a *Almanac) Location(seed int64) int64 {
	for _, m := range a.Maps {
		seed = m.Get(seed)
	}
	return seed
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, errors.Errorf("day05: odd number of seed values (%d)", len(a.Seeds))
	}
	out := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}

	return out, nil
}

// Part1 returns the lowest location of any listed seed.
func Part1(in string) (int64, error) {
	a, err := Parse(in)
	if err != nil {
		return 0, err
	}
	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		best = min(best, a.Location(s))
	}

	return best, nil
}

// Part2 returns the lowest location reachable from any seed range.
func Part2(in string) (int64, error) {
	a, err := Parse(in)
	if err != nil {
		return 0, err
	}
	ivs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	for _, m := range a.Maps {
		ivs = m.Apply(ivs)
		klog.V(2).Infof("day05: %s yields %d intervals", m.Name, len(ivs))
	}
	if len(ivs) == 0 {
		return 0, ErrNoSeeds
	}
	best := ivs[0].Start
	for _, iv := range ivs[1:] {
		best = min(best, iv.Start)
	}

	return best, nil
}
