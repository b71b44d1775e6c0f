// Package testkit provides deterministic test fixtures and a brute-force
// reference implementation used to cross-check the exact evaluator.
package testkit

import (
	"math/rand"

	"binomtest/internal/dist"
)

// Case is a single binomial test scenario.
type Case struct {
	K uint64
	N uint64
	P float64
}

// Generate produces count random valid cases with trial counts in
// [1, maxN]. The same seed always yields the same cases.
func Generate(seed int64, count int, maxN uint64) []Case {
	rng := rand.New(rand.NewSource(seed))
	cases := make([]Case, count)
	for i := range cases {
		n := uint64(rng.Int63n(int64(maxN))) + 1
		cases[i] = Case{
			K: uint64(rng.Int63n(int64(n) + 1)),
			N: n,
			P: rng.Float64(),
		}
	}
	return cases
}

// ReferenceLess accumulates P(X <= k) term by term. O(n); test oracle only.
func ReferenceLess(k, n uint64, p float64) float64 {
	b := dist.NewBinomial(n, p)
	sum := 0.0
	for i := uint64(0); i <= k; i++ {
		sum += b.PMF(i)
	}
	return sum
}

// ReferenceGreater accumulates P(X >= k) term by term.
func ReferenceGreater(k, n uint64, p float64) float64 {
	b := dist.NewBinomial(n, p)
	sum := 0.0
	for i := k; i <= n; i++ {
		sum += b.PMF(i)
	}
	return sum
}

// ReferenceTwoSided walks the whole support and sums every mass that does
// not exceed the observed one, the way scipy's binomtest defines the
// two-sided p-value.
func ReferenceTwoSided(k, n uint64, p float64) float64 {
	b := dist.NewBinomial(n, p)
	d := b.PMF(k)
	sum := 0.0
	for i := uint64(0); i <= n; i++ {
		if m := b.PMF(i); m <= d {
			sum += m
		}
	}
	return sum
}
