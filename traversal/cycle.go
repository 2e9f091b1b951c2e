// File: cycle.go
// Role: cycle structure of a single walk.
//
// A walk's full state is (node, step mod tape length). The state space is
// finite and the successor function deterministic, so every walk is a lead-in
// of μ states followed by a cycle of λ states. Brent's algorithm finds both
// without remembering visited states.
package traversal

import (
	"github.com/katalvlaran/advent/core"
)

// CycleReport describes the periodic structure of a walk from one start node.
type CycleReport struct {
	// Lead is the number of steps before the walk first enters its cycle (μ).
	Lead int
	// Period is the length of the state cycle (λ).
	Period int
	// FirstHit is the first step count > 0 at which stop holds, or -1.
	FirstHit int
	// Hits lists every step count in (0, FirstHit+Period) at which stop holds.
	Hits []int
	// Steady reports that stop holds exactly at FirstHit, 2·FirstHit, ... and
	// nowhere else, i.e. the first hit is also the repeat period of the hits.
	// This is the property that lets independent walks be combined with an LCM.
	Steady bool
}

type state struct {
	node *core.Node
	pos  int
}

// Analyze measures the lead-in and period of the walk from start under tape,
// and where stop fires along it.
//
// stop is evaluated on node identity; predicates that depend on the step
// count are not periodic and give a meaningless Steady flag.
//
// Complexity: O(μ+λ) time, O(μ+λ) only for Hits.
func Analyze(start *core.Node, stop StopFunc, tape *Tape) (CycleReport, error) {
	if start == nil {
		return CycleReport{}, ErrNilStart
	}
	if stop == nil {
		return CycleReport{}, ErrNilStop
	}
	if tape == nil {
		return CycleReport{}, ErrEmptyTape
	}

	next := func(s state) state {
		return state{
			node: s.node.Child(tape.At(s.pos)),
			pos:  (s.pos + 1) % tape.Len(),
		}
	}
	x0 := state{node: start}

	// 1) Brent: find the period λ.
	power, lam := 1, 1
	tortoise, hare := x0, next(x0)
	for tortoise != hare {
		if power == lam {
			tortoise = hare
			power *= 2
			lam = 0
		}
		hare = next(hare)
		lam++
	}

	// 2) Find the lead-in μ: hare starts λ ahead of tortoise.
	tortoise, hare = x0, x0
	for i := 0; i < lam; i++ {
		hare = next(hare)
	}
	mu := 0
	for tortoise != hare {
		tortoise = next(tortoise)
		hare = next(hare)
		mu++
	}

	report := CycleReport{Lead: mu, Period: lam, FirstHit: -1}

	// 3) Record hits. Every state from μ onwards repeats with period λ, so any
	//    first hit lies in (0, μ+λ]; the window after it needs λ more steps.
	limit := mu + lam
	cur := x0
	for steps := 1; steps < limit; steps++ {
		cur = next(cur)
		if !stop(cur.node, steps) {
			continue
		}
		report.Hits = append(report.Hits, steps)
		if report.FirstHit < 0 {
			report.FirstHit = steps
			limit = steps + lam
		}
	}
	if report.FirstHit < 0 {
		// The last state before the window closes may still be a hit.
		cur = next(cur)
		if stop(cur.node, limit) {
			report.FirstHit = limit
			report.Hits = append(report.Hits, limit)
		}
	}

	report.Steady = steady(report)

	return report, nil
}

// steady reports whether the hits of r fall exactly on the multiples of its
// first hit. Past the lead-in the hit pattern repeats every Period steps, so
// it suffices that Period is a multiple of FirstHit and that the one window
// [FirstHit, FirstHit+Period) holds exactly FirstHit, 2·FirstHit, ..., Period.
func steady(r CycleReport) bool {
	f := r.FirstHit
	if f <= 0 || f < r.Lead || r.Period%f != 0 {
		return false
	}
	if len(r.Hits) != r.Period/f {
		return false
	}
	for k, h := range r.Hits {
		if h != (k+1)*f {
			return false
		}
	}

	return true
}
