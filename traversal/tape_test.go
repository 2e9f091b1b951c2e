package traversal_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/traversal"
)

func TestTape_Periodic(t *testing.T) {
	for _, s := range []string{"L", "LR", "LLR", "RRLRLLRLR"} {
		tape := mustTape(t, s)
		require.Equal(t, len(s), tape.Len())
		for i := 0; i < 3*tape.Len(); i++ {
			assert.Equal(t, tape.At(i), tape.At(i+tape.Len()), "%s at %d", s, i)
		}
		assert.Equal(t, s, tape.String())
	}
}

func TestTape_At(t *testing.T) {
	tape := mustTape(t, "LLR\n")
	got := make([]core.Side, 7)
	for i := range got {
		got[i] = tape.At(i)
	}
	assert.Equal(t, []core.Side{
		core.Left, core.Left, core.Right,
		core.Left, core.Left, core.Right,
		core.Left,
	}, got)
}

func TestTape_Errors(t *testing.T) {
	_, err := traversal.ParseTape("")
	assert.True(t, errors.Is(err, traversal.ErrEmptyTape))

	_, err = traversal.NewTape(nil)
	assert.True(t, errors.Is(err, traversal.ErrEmptyTape))

	_, err = traversal.ParseTape("LRX")
	assert.True(t, errors.Is(err, traversal.ErrBadInstruction))
}

func TestNewTape_Copies(t *testing.T) {
	seq := []core.Side{core.Left, core.Right}
	tape, err := traversal.NewTape(seq)
	require.NoError(t, err)

	seq[0] = core.Right
	assert.Equal(t, core.Left, tape.At(0))
}
