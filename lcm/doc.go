// Package lcm combines independently measured cycle lengths into the step at
// which all cycles meet: their least common multiple.
//
// What:
//
//   - PrimeFactors splits a positive integer into its prime factors by trial
//     division, ascending.
//   - Of factors every value, keeps the maximum exponent of each prime in an
//     ordered tree, and multiplies prime^exponent in ascending prime order.
//
// Why factorisation rather than gcd folding: the per-prime exponent table is
// what gets logged when checking why a set of walks meets where it does.
//
// Complexity:
//
//   - PrimeFactors(n): O(√n) divisions.
//   - Of(v₁..vₖ):      O(Σ√vᵢ + P log P) for P distinct primes.
//
// Errors:
//
//   - ErrNoValues:    Of called without values.
//   - ErrNonPositive: a value below 1.
//
// Overflow of the result beyond the range of T is not detected.
package lcm
