// File: traversal.go
// Role: the shared walk loop and the single-configuration Traversal.
package traversal

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/advent/core"
)

// walker holds the mutable state of any walk.
//
// cur and next are two buffers swapped after every step, so advancing never
// allocates; slices handed to OnStep are only valid for the duration of the call.
type walker struct {
	cur     []*core.Node
	next    []*core.Node
	steps   int
	tape    *Tape
	stop    GroupStopFunc
	advance advanceFunc
	opts    Options
}

func newWalker(starts []*core.Node, stop GroupStopFunc, tape *Tape, arity Arity, opts []Option) (*walker, error) {
	if tape == nil {
		return nil, ErrEmptyTape
	}
	if stop == nil {
		return nil, ErrNilStop
	}
	for i, n := range starts {
		if n == nil {
			return nil, errors.Wrapf(ErrNilStart, "start %d", i)
		}
	}
	advance, err := strategy(arity, len(starts))
	if err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker{
		cur:     make([]*core.Node, len(starts)),
		next:    make([]*core.Node, len(starts)),
		tape:    tape,
		stop:    stop,
		advance: advance,
		opts:    o,
	}
	copy(w.cur, starts)

	return w, nil
}

func (w *walker) hasNext() bool {
	return !w.stop(w.cur, w.steps)
}

// step reads the tape at the current step count, advances every
// configuration along that side and increments the count.
func (w *walker) step() error {
	if !w.hasNext() {
		return errors.Wrapf(ErrTerminal, "after %d steps at %s", w.steps, describe(w.cur))
	}
	if w.opts.MaxSteps > 0 && w.steps >= w.opts.MaxSteps {
		return errors.Wrapf(ErrStepLimit, "%d steps", w.opts.MaxSteps)
	}

	side := w.tape.At(w.steps)
	w.advance(w.next, w.cur, side)
	w.cur, w.next = w.next, w.cur
	w.steps++

	if w.opts.OnStep != nil {
		w.opts.OnStep(w.next, w.cur, w.steps)
	}
	klog.V(2).Infof("step %d %s -> %s", w.steps, side, describe(w.cur))

	return nil
}

func (w *walker) run() error {
	for w.hasNext() {
		if err := w.opts.Ctx.Err(); err != nil {
			return errors.Wrapf(err, "walk cancelled after %d steps", w.steps)
		}
		if err := w.step(); err != nil {
			return err
		}
	}

	return nil
}

// describe renders a configuration as space-separated node names.
func describe(nodes []*core.Node) string {
	if len(nodes) == 1 {
		return nodes[0].Name()
	}
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name()
	}

	return strings.Join(names, " ")
}

// Traversal walks a single node through the graph.
type Traversal struct {
	w *walker
}

// New prepares a Traversal from start, terminal when stop holds.
//
// Errors:
//   - ErrNilStart, ErrNilStop, ErrEmptyTape (nil tape), ErrOptionViolation.
func New(start *core.Node, stop StopFunc, tape *Tape, opts ...Option) (*Traversal, error) {
	if start == nil {
		return nil, ErrNilStart
	}
	if stop == nil {
		return nil, ErrNilStop
	}
	group := func(nodes []*core.Node, steps int) bool { return stop(nodes[0], steps) }
	w, err := newWalker([]*core.Node{start}, group, tape, Single, opts)
	if err != nil {
		return nil, err
	}

	return &Traversal{w: w}, nil
}

// HasNext reports whether the stop predicate is still false.
func (t *Traversal) HasNext() bool { return t.w.hasNext() }

// Step advances one instruction and returns the new current node.
// Returns ErrTerminal if the traversal has already stopped.
func (t *Traversal) Step() (*core.Node, error) {
	if err := t.w.step(); err != nil {
		return nil, err
	}

	return t.w.cur[0], nil
}

// Run steps while HasNext holds and returns the final step count.
func (t *Traversal) Run() (int, error) {
	err := t.w.run()
	return t.w.steps, err
}

// Current returns the node the traversal is on.
func (t *Traversal) Current() *core.Node { return t.w.cur[0] }

// Steps returns the number of steps taken so far.
func (t *Traversal) Steps() int { return t.w.steps }
