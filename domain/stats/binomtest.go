// Package stats implements the exact one-sample binomial hypothesis test:
// the probability, under a null success rate p, of an outcome at least as
// extreme as the observed success count.
package stats

import (
	"math"

	"binomtest/domain/core"
	"binomtest/internal/dist"
)

// BinomialTest computes the exact p-value for observing k successes in n
// Bernoulli trials under a hypothesized success probability p, for the
// given alternative hypothesis. The computation is pure and reentrant;
// the distribution handle is derived fresh on every call.
//
// Validation failures are reported as wrapped sentinels from domain/core
// and never reach the distribution layer. Legitimate extreme inputs do
// not fail: deep tails degrade gracefully toward 0.
func BinomialTest(k, n uint64, p float64, alt Alternative) (float64, error) {
	if n < 1 {
		return 0, core.NewTrialsError(n)
	}
	if k > n {
		return 0, core.NewSuccessCountError(k, n)
	}
	if !(p >= 0 && p <= 1) {
		return 0, core.NewProbabilityError(p)
	}

	binom := dist.NewBinomial(n, p)

	switch alt {
	case Less:
		return binom.CDF(k), nil
	case Greater:
		if k == 0 {
			// P(X >= 0) is 1 by definition.
			return 1, nil
		}
		return binom.SF(k - 1), nil
	}

	return twoSided(binom, k, n, p), nil
}

// twoSided sums the observed tail with every outcome on the opposite side
// of the mode whose mass does not exceed the observed mass. The anchor is
// floor(p*n), a deliberate stand-in for the true mode: when the
// observation lands exactly on it the whole support counts as the
// two-sided region.
func twoSided(binom dist.Binomial, k, n uint64, p float64) float64 {
	d := binom.PMF(k)
	anchor := uint64(p * float64(n))

	switch {
	case k == anchor:
		return 1

	case k < anchor:
		// Observation on the low tail. Mirror it on the high side, where
		// the mass is non-increasing: searching the negated masses finds
		// the last count still carrying at least the observed mass, and
		// the survival beyond it is the far-tail contribution.
		x := searchBoundary(
			func(x uint64) float64 { return -binom.PMF(x) },
			-d,
			uint64(math.Ceil(p*float64(n))),
			n,
		)
		return binom.CDF(k) + binom.SF(x)

	default:
		// Observation on the high tail; find the largest low-side count
		// whose mass still fits under d.
		x := searchBoundary(binom.PMF, d, 0, uint64(math.Floor(p*float64(n))))
		if x == 0 && d < binom.PMF(0) {
			// No low-side outcome qualifies, so that tail contributes
			// nothing at all.
			return binom.SF(k - 1)
		}
		return binom.CDF(x) + binom.SF(k - 1)
	}
}
