// Package day06 counts the ways to win boat races. Holding the button for d
// milliseconds of a t millisecond race covers d·(t-d) millimetres.
package day06

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzles"
)

func init() {
	puzzles.Register(puzzles.Day{Number: 6, Parts: []puzzles.PartFunc{Part1, Part2}})
}

// ErrMismatch is returned when times and distances differ in count.
var ErrMismatch = errors.New("day06: times and distances must have the same length")

// Race is a duration and the record distance to beat.
type Race struct {
	Time, Record int64
}

func distance(hold, time int64) int64 { return hold * (time - hold) }

// Ways counts the hold durations in [1, Time-1] that beat the record.
// The distance is symmetric around Time/2 and increasing below it, so the
// shortest winning hold is found by bisection.
func (r Race) Ways() int64 {
	mid := r.Time / 2
	if r.Time < 2 || distance(mid, r.Time) <= r.Record {
		return 0
	}
	lo, hi := int64(1), mid
	for lo < hi {
		m := lo + (hi-lo)/2
		if distance(m, r.Time) > r.Record {
			hi = m
		} else {
			lo = m + 1
		}
	}

	return r.Time - 2*lo + 1
}

// fields returns the values after label on line, e.g. "Time:".
func fields(line, label string) (string, error) {
	rest, ok := strings.CutPrefix(line, label)
	if !ok {
		return "", puzzles.Malformed(line, nil)
	}
	return rest, nil
}

func header(in string) (times, dists string, err error) {
	lines := input.Lines(in)
	if len(lines) < 2 {
		return "", "", puzzles.Malformed(in, nil)
	}
	if times, err = fields(lines[0], "Time:"); err != nil {
		return "", "", err
	}
	if dists, err = fields(lines[1], "Distance:"); err != nil {
		return "", "", err
	}

	return times, dists, nil
}

// Races parses one race per column.
func Races(in string) ([]Race, error) {
	ts, ds, err := header(in)
	if err != nil {
		return nil, err
	}
	times, err := input.Numbers[int64](ts)
	if err != nil {
		return nil, err
	}
	dists, err := input.Numbers[int64](ds)
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, errors.Wrapf(ErrMismatch, "%d times, %d distances", len(times), len(dists))
	}
	out := make([]Race, len(times))
	for i := range times {
		out[i] = Race{Time: times[i], Record: dists[i]}
	}

	return out, nil
}

// Kerned reads the columns as one race with the spaces removed.
func Kerned(in string) (Race, error) {
	ts, ds, err := header(in)
	if err != nil {
		return Race{}, err
	}
	t, err := input.Number[int64](strings.Join(strings.Fields(ts), ""))
	if err != nil {
		return Race{}, err
	}
	d, err := input.Number[int64](strings.Join(strings.Fields(ds), ""))
	if err != nil {
		return Race{}, err
	}

	return Race{Time: t, Record: d}, nil
}

// Part1 multiplies the ways to win of every race.
func Part1(in string) (int64, error) {
	races, err := Races(in)
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for _, r := range races {
		product *= r.Ways()
	}

	return product, nil
}

// Part2 counts the ways to win the kerned race.
func Part2(in string) (int64, error) {
	r, err := Kerned(in)
	if err != nil {
		return 0, err
	}

	return r.Ways(), nil
}
