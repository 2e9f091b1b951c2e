package lcm

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/exp/constraints"
)

var (
	// ErrNoValues is returned when Of receives no values.
	ErrNoValues = errors.New("lcm: no values")

	// ErrNonPositive is returned for a value below 1.
	ErrNonPositive = errors.New("lcm: value must be positive")
)

// PrimeFactors returns the prime factors of n in ascending order, repeated by
// multiplicity. PrimeFactors(1) is empty.
func PrimeFactors[T constraints.Integer](n T) ([]T, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrNonPositive, "%d", n)
	}

	var factors []T
	m := n
	// p <= m/p avoids overflowing p*p near the top of T's range.
	for p := T(2); p <= m/p; p++ {
		for m%p == 0 {
			factors = append(factors, p)
			m /= p
		}
	}
	if m > 1 {
		factors = append(factors, m)
	}

	return factors, nil
}

// Exponents returns the prime factorisation of n as prime → exponent,
// ordered by prime.
func Exponents[T constraints.Integer](n T) (*redblacktree.Tree, error) {
	factors, err := PrimeFactors(n)
	if err != nil {
		return nil, err
	}
	tree := redblacktree.NewWith(compare[T])
	for _, p := range factors {
		e, _ := tree.Get(p)
		count, _ := e.(int)
		tree.Put(p, count+1)
	}

	return tree, nil
}

// Of returns the least common multiple of values.
//
// Implementation:
//  1. Factor each value into prime → exponent.
//  2. Keep the maximum exponent of every prime seen in any value.
//  3. Multiply prime^exponent in ascending prime order.
//
// Of(n) == n, Of(a, a) == a, and the result does not depend on argument order.
func Of[T constraints.Integer](values ...T) (T, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}

	// 1) + 2) aggregate maximum exponents.
	maxExp := redblacktree.NewWith(compare[T])
	for _, v := range values {
		exps, err := Exponents(v)
		if err != nil {
			return 0, err
		}
		klog.V(3).Infof("factorisation of %d: %s", v, render(exps))

		it := exps.Iterator()
		for it.Next() {
			cur, _ := maxExp.Get(it.Key())
			best, _ := cur.(int)
			if e := it.Value().(int); e > best {
				maxExp.Put(it.Key(), e)
			}
		}
	}
	klog.V(3).Infof("lcm factorisation: %s", render(maxExp))

	// 3) multiply out.
	result := T(1)
	it := maxExp.Iterator()
	for it.Next() {
		p := it.Key().(T)
		for e := it.Value().(int); e > 0; e-- {
			result *= p
		}
	}

	return result, nil
}

// compare orders tree keys of type T.
func compare[T constraints.Integer](a, b interface{}) int {
	x, y := a.(T), b.(T)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
