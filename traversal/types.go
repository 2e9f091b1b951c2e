// Package traversal defines options, predicates and sentinel errors for
// tape-driven walks over a core.Graph.
package traversal

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/core"
)

var (
	// ErrEmptyTape is returned when a tape would have no symbols.
	ErrEmptyTape = errors.New("traversal: instruction tape is empty")

	// ErrBadInstruction is returned for a tape symbol other than 'L' or 'R'.
	ErrBadInstruction = errors.New("traversal: bad instruction symbol")

	// ErrNilStart is returned when a walk is started without a node.
	ErrNilStart = errors.New("traversal: start node is nil")

	// ErrNilStop is returned when a walk is started without a stop predicate.
	ErrNilStop = errors.New("traversal: stop predicate is nil")

	// ErrTerminal is returned by Step once the stop predicate holds.
	ErrTerminal = errors.New("traversal: configuration is terminal")

	// ErrStepLimit is returned when the WithMaxSteps budget is exhausted.
	ErrStepLimit = errors.New("traversal: step limit reached")

	// ErrArity is returned for an unknown Arity or a start set it cannot drive.
	ErrArity = errors.New("traversal: unsupported arity")

	// ErrOptionViolation is returned when an option receives an invalid value.
	ErrOptionViolation = errors.New("traversal: invalid option")
)

// StopFunc decides whether a single configuration is terminal.
// It receives the current node and the number of steps taken so far.
type StopFunc func(n *core.Node, steps int) bool

// GroupStopFunc decides whether a group of configurations is terminal.
type GroupStopFunc func(nodes []*core.Node, steps int) bool

// NameEquals stops on the node called name.
func NameEquals(name string) StopFunc {
	return func(n *core.Node, _ int) bool { return n.Name() == name }
}

// NameHasSuffix stops on any node whose name ends with suffix.
func NameHasSuffix(suffix string) StopFunc {
	return func(n *core.Node, _ int) bool { return strings.HasSuffix(n.Name(), suffix) }
}

// All lifts a StopFunc to a group: every configuration must be terminal.
func All(stop StopFunc) GroupStopFunc {
	return func(nodes []*core.Node, steps int) bool {
		for _, n := range nodes {
			if !stop(n, steps) {
				return false
			}
		}
		return true
	}
}

// Arity selects how a walk advances its configurations.
type Arity int

const (
	// Single advances exactly one configuration.
	Single Arity = iota
	// Lockstep advances every configuration with the same tape symbol.
	Lockstep
)

// String returns the lower-case arity name.
func (a Arity) String() string {
	switch a {
	case Single:
		return "single"
	case Lockstep:
		return "lockstep"
	default:
		return "unknown"
	}
}

// Option configures a walk.
type Option func(*Options)

// Options holds walk parameters.
type Options struct {
	// Ctx cancels a running walk; checked before every step.
	Ctx context.Context

	// MaxSteps bounds the number of steps; 0 means unlimited.
	MaxSteps int

	// OnStep, if non-nil, is called after every step with the configuration
	// before and after it and the new step count.
	OnStep func(from, to []*core.Node, steps int)

	err error
}

// DefaultOptions returns Options with a background context, no step limit
// and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnStep:   nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds a walk to n steps (0 = unlimited).
// A negative n is reported as ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "max steps %d", n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep installs a per-step hook.
func WithOnStep(fn func(from, to []*core.Node, steps int)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
