// Package puzzles keeps the registry of solved days.
//
// Every day package registers itself from an init function; importing
// puzzles/all pulls all of them in.
package puzzles

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/advent/solution"
)

var (
	// ErrUnknownDay is returned for a day nothing registered.
	ErrUnknownDay = errors.New("puzzles: unknown day")
	// ErrUnknownPart is returned for a part the day does not have.
	ErrUnknownPart = errors.New("puzzles: unknown part")
	// ErrMalformedLine marks input lines that do not match the expected
	// format. Day packages wrap it with the offending line.
	ErrMalformedLine = errors.New("puzzles: malformed input line")
)

// PartFunc computes the answer of one part from the raw input text.
type PartFunc func(input string) (int64, error)

// Day is a puzzle day and its parts, in order.
type Day struct {
	Number int
	Parts  []PartFunc
}

var (
	mu   sync.RWMutex
	days = make(map[int]Day)
)

// Register adds d to the registry. It panics if the day is already registered.
func Register(d Day) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := days[d.Number]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for day %d", d.Number))
	}
	days[d.Number] = d
}

// Lookup returns the registered day n.
func Lookup(n int) (Day, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := days[n]

	return d, ok
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]int, 0, len(days))
	for n := range days {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// Solve runs the given parts of day n on input, every part if none are
// named. The first failing part aborts the day.
func Solve(n int, input string, parts ...int) (solution.Result, error) {
	d, ok := Lookup(n)
	if !ok {
		return solution.Result{}, errors.Wrapf(ErrUnknownDay, "%d", n)
	}
	if len(parts) == 0 {
		for i := range d.Parts {
			parts = append(parts, i+1)
		}
	}

	res := solution.Result{Day: n}
	for _, p := range parts {
		if p < 1 || p > len(d.Parts) {
			return res, errors.Wrapf(ErrUnknownPart, "day %d part %d", n, p)
		}
		v, err := d.Parts[p-1](input)
		if err != nil {
			return res, errors.Wrapf(err, "day %d part %d", n, p)
		}
		klog.V(1).Infof("day %d part %d: %d", n, p, v)
		res.Parts = append(res.Parts, solution.Answer{Part: p, Value: v})
	}

	return res, nil
}

// Malformed wraps ErrMalformedLine with the offending line.
func Malformed(line string, cause error) error {
	if cause == nil {
		return errors.Wrapf(ErrMalformedLine, "%q", line)
	}
	return errors.Wrapf(ErrMalformedLine, "%q: %v", line, cause)
}
