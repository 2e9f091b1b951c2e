package solution_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/advent/solution"
)

func sample() solution.Result {
	r := solution.Result{Day: 8}
	r.Add(6)
	r.Add(13133452426987)
	return r
}

func TestResult_Add(t *testing.T) {
	r := sample()
	assert.Equal(t, []solution.Answer{{Part: 1, Value: 6}, {Part: 2, Value: 13133452426987}}, r.Parts)
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, solution.NewPrinter(&buf).Print(sample()))
	assert.Equal(t, "Solution 1: 6\nSolution 2: 13133452426987\n", buf.String())
}

func TestPrinter_Grouping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, solution.NewPrinter(&buf, solution.WithGrouping(), solution.WithHeader()).Print(sample()))
	assert.Equal(t, "Day 8\nSolution 1: 6\nSolution 2: 13,133,452,426,987\n", buf.String())

	buf.Reset()
	require.NoError(t, solution.NewPrinter(&buf, solution.WithGrouping(language.German)).Print(sample()))
	assert.Contains(t, buf.String(), "13.133.452.426.987")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrinter_WriteError(t *testing.T) {
	err := solution.NewPrinter(failingWriter{}).Print(sample())
	assert.Error(t, err)
}
