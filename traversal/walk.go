// File: walk.go
// Role: arity strategies, group walks and per-start cycle lengths.
package traversal

import (
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/advent/core"
)

// advanceFunc writes the successors of src along side into dst.
type advanceFunc func(dst, src []*core.Node, side core.Side)

func advanceSingle(dst, src []*core.Node, side core.Side) {
	dst[0] = src[0].Child(side)
}

func advanceLockstep(dst, src []*core.Node, side core.Side) {
	for i, n := range src {
		dst[i] = n.Child(side)
	}
}

// strategy resolves an Arity into its advance function for k configurations.
func strategy(a Arity, k int) (advanceFunc, error) {
	switch a {
	case Single:
		if k != 1 {
			return nil, errors.Wrapf(ErrArity, "%s walk needs exactly one start, got %d", a, k)
		}
		return advanceSingle, nil
	case Lockstep:
		if k == 0 {
			return nil, errors.Wrapf(ErrArity, "%s walk needs at least one start", a)
		}
		return advanceLockstep, nil
	default:
		return nil, errors.Wrapf(ErrArity, "arity %d", int(a))
	}
}

// WalkResult is the outcome of Walk.
type WalkResult struct {
	// Steps is the number of tape instructions consumed.
	Steps int
	// Final holds the terminal configuration, one node per start.
	Final []*core.Node
}

// Walk advances starts under tape until stop holds, using the strategy
// selected by arity.
//
// Lockstep is the brute-force simultaneous walk; its step count grows with the
// LCM of the individual cycle lengths, so it is only practical on small graphs.
func Walk(starts []*core.Node, stop GroupStopFunc, tape *Tape, arity Arity, opts ...Option) (*WalkResult, error) {
	w, err := newWalker(starts, stop, tape, arity, opts)
	if err != nil {
		return nil, err
	}
	if err := w.run(); err != nil {
		return nil, err
	}

	final := make([]*core.Node, len(w.cur))
	copy(final, w.cur)

	return &WalkResult{Steps: w.steps, Final: final}, nil
}

// CycleLengths runs one Single traversal per start node and returns the step
// count at which each first satisfies stop, in the order of starts.
func CycleLengths(starts []*core.Node, stop StopFunc, tape *Tape, opts ...Option) ([]int, error) {
	out := make([]int, 0, len(starts))
	for _, start := range starts {
		t, err := New(start, stop, tape, opts...)
		if err != nil {
			return nil, err
		}
		n, err := t.Run()
		if err != nil {
			return nil, errors.Wrapf(err, "walk from %s", start.Name())
		}
		klog.V(1).Infof("walk from %s stops at %s after %s steps",
			start.Name(), t.Current().Name(), humanize.Comma(int64(n)))
		out = append(out, n)
	}

	return out, nil
}
