package traversal

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/core"
)

// Tape is an immutable, non-empty cyclic sequence of instructions.
type Tape struct {
	seq []core.Side
}

// NewTape copies seq into a Tape. Returns ErrEmptyTape for an empty seq.
func NewTape(seq []core.Side) (*Tape, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyTape
	}
	cp := make([]core.Side, len(seq))
	copy(cp, seq)

	return &Tape{seq: cp}, nil
}

// ParseTape builds a Tape from a line such as "LLR".
// Surrounding whitespace is ignored.
func ParseTape(line string) (*Tape, error) {
	line = strings.TrimSpace(line)
	seq := make([]core.Side, 0, len(line))
	for i, r := range line {
		s, err := core.ParseSide(r)
		if err != nil {
			return nil, errors.Wrapf(ErrBadInstruction, "position %d: %q", i, r)
		}
		seq = append(seq, s)
	}

	return NewTape(seq)
}

// At returns the instruction for step i, i.e. seq[i mod Len()].
// i must be non-negative.
func (t *Tape) At(i int) core.Side {
	return t.seq[i%len(t.seq)]
}

// Len returns the period of the tape.
func (t *Tape) Len() int { return len(t.seq) }

// String renders the tape back to its L/R form.
func (t *Tape) String() string {
	var b strings.Builder
	b.Grow(len(t.seq))
	for _, s := range t.seq {
		b.WriteString(s.String())
	}

	return b.String()
}
