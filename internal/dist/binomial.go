// Package dist provides the binomial distribution over an integer support,
// wrapping gonum so that both tails stay accurate down to the float64
// underflow floor. This replaces fragmented probability calculations
// throughout the codebase.
package dist

import (
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial is a stateless handle over the distribution of successes in n
// independent Bernoulli(p) trials. The zero value is not usable; construct
// with NewBinomial.
type Binomial struct {
	n   float64
	p   float64
	src distuv.Binomial
}

// NewBinomial derives a distribution handle from the trial count and the
// success probability. Parameters are assumed validated by the caller.
func NewBinomial(n uint64, p float64) Binomial {
	return Binomial{
		n:   float64(n),
		p:   p,
		src: distuv.Binomial{N: float64(n), P: p},
	}
}

// PMF returns P(X == k), the probability mass at exactly k successes.
func (b Binomial) PMF(k uint64) float64 {
	x := float64(k)
	if x > b.n {
		return 0
	}
	// gonum evaluates Prob in log space, where p of exactly 0 or 1
	// degenerates to 0*log(0). The point masses are handled here instead.
	if b.p == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if b.p == 1 {
		if x == b.n {
			return 1
		}
		return 0
	}
	return b.src.Prob(x)
}

// CDF returns P(X <= k) via the regularized incomplete beta function.
func (b Binomial) CDF(k uint64) float64 {
	x := float64(k)
	if x >= b.n {
		return 1
	}
	if b.p == 0 {
		return 1
	}
	if b.p == 1 {
		return 0
	}
	return mathext.RegIncBeta(b.n-x, x+1, 1-b.p)
}

// SF returns the survival function P(X > k). The right tail is computed
// directly as I_p(k+1, n-k); computing 1-CDF(k) instead would cancel to
// zero long before the underflow floor.
func (b Binomial) SF(k uint64) float64 {
	x := float64(k)
	if x >= b.n {
		return 0
	}
	if b.p == 0 {
		return 0
	}
	if b.p == 1 {
		return 1
	}
	return mathext.RegIncBeta(x+1, b.n-x, b.p)
}
