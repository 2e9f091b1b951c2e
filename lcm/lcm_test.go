package lcm

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeFactors(t *testing.T) {
	cases := map[int][]int{
		1:      nil,
		2:      {2},
		4:      {2, 2},
		12:     {2, 2, 3},
		13:     {13},
		360:    {2, 2, 2, 3, 3, 5},
		20777:  {79, 263},
		999983: {999983},
	}
	for n, want := range cases {
		got, err := PrimeFactors(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, want, got, "n=%d", n)
	}

	_, err := PrimeFactors(0)
	assert.True(t, errors.Is(err, ErrNonPositive))
	_, err = PrimeFactors(-4)
	assert.True(t, errors.Is(err, ErrNonPositive))
}

func TestOf_Scenarios(t *testing.T) {
	got, err := Of(4, 6)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	got, err = Of(2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestOf_Degenerate(t *testing.T) {
	for _, n := range []int{1, 2, 7, 12, 20777} {
		got, err := Of(n)
		require.NoError(t, err)
		assert.Equal(t, n, got, "lcm([%d])", n)

		got, err = Of(n, n)
		require.NoError(t, err)
		assert.Equal(t, n, got, "lcm([%d, %d])", n, n)

		got, err = Of(n, n, n)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestOf_Coprime(t *testing.T) {
	pairs := [][2]int64{{2, 3}, {8, 9}, {13, 27}, {35, 64}, {20777, 18}}
	for _, p := range pairs {
		got, err := Of(p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, p[0]*p[1], got, "lcm(%d, %d)", p[0], p[1])
	}
}

func TestOf_Commutative(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	values := []int64{12, 18, 20777, 35, 64, 999}
	want, err := Of(values...)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		shuffled := append([]int64(nil), values...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := Of(shuffled...)
		require.NoError(t, err)
		assert.Equal(t, want, got, "order %v", shuffled)
	}
}

// TestOf_CycleLengths uses cycle lengths of the shape the network walks
// produce: a shared tape-length prime times a per-walk prime.
func TestOf_CycleLengths(t *testing.T) {
	got, err := Of[int64](263*79, 263*53, 263*61)
	require.NoError(t, err)
	assert.Equal(t, int64(263*79*53*61), got)
}

func TestOf_Errors(t *testing.T) {
	_, err := Of[int]()
	assert.True(t, errors.Is(err, ErrNoValues))

	_, err = Of(3, 0, 5)
	assert.True(t, errors.Is(err, ErrNonPositive))
}

func TestOf_Unsigned(t *testing.T) {
	got, err := Of[uint32](4, 10)
	require.NoError(t, err)
	assert.Equal(t, uint32(20), got)
}

func TestExponents_Render(t *testing.T) {
	tree, err := Exponents(360)
	require.NoError(t, err)
	assert.Equal(t, "2^3 · 3^2 · 5", render(tree))

	one, err := Exponents(1)
	require.NoError(t, err)
	assert.Equal(t, "1", render(one))
}

func BenchmarkOf(b *testing.B) {
	values := []int64{20777, 18673, 13939, 17621, 19199, 15517}
	for i := 0; i < b.N; i++ {
		_, _ = Of(values...)
	}
}
