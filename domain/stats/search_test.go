package stats

import (
	"math"
	"testing"
)

func TestTotalCmp_Ordering(t *testing.T) {
	// Strictly ascending under the IEEE 754 total order.
	ordered := []float64{
		math.Inf(-1),
		-1e300,
		-1,
		-math.SmallestNonzeroFloat64,
		math.Copysign(0, -1),
		0,
		math.SmallestNonzeroFloat64,
		1,
		1e300,
		math.Inf(1),
		math.NaN(),
	}

	for i := range ordered {
		for j := range ordered {
			got := totalCmp(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("totalCmp(%v, %v) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestTotalCmp_NaNEqualsNaN(t *testing.T) {
	if got := totalCmp(math.NaN(), math.NaN()); got != 0 {
		t.Errorf("totalCmp(NaN, NaN) = %d, want 0", got)
	}
}

func TestSearchBoundary_KeyBetweenSteps(t *testing.T) {
	f := func(x uint64) float64 { return float64(x) }

	// The crossing falls strictly between 3 and 4; the largest index not
	// exceeding the key wins.
	if got := searchBoundary(f, 3.5, 0, 10); got != 3 {
		t.Errorf("searchBoundary(identity, 3.5) = %d, want 3", got)
	}
}

func TestSearchBoundary_ExactHit(t *testing.T) {
	f := func(x uint64) float64 { return 2 * float64(x) }

	if got := searchBoundary(f, 8, 0, 10); got != 4 {
		t.Errorf("searchBoundary(2x, 8) = %d, want 4", got)
	}
}

func TestSearchBoundary_AllAboveKey(t *testing.T) {
	f := func(x uint64) float64 { return float64(x) + 10 }

	// Even f(0) overshoots; the result saturates at zero instead of
	// wrapping the unsigned domain.
	if got := searchBoundary(f, 3, 0, 5); got != 0 {
		t.Errorf("searchBoundary(all above) = %d, want 0", got)
	}
}

func TestSearchBoundary_AllBelowKey(t *testing.T) {
	f := func(x uint64) float64 { return float64(x) }

	if got := searchBoundary(f, 100, 0, 5); got != 5 {
		t.Errorf("searchBoundary(all below) = %d, want 5", got)
	}
}

func TestSearchBoundary_NonzeroLowSaturation(t *testing.T) {
	f := func(x uint64) float64 { return float64(x) }

	// Everything in [3, 5] overshoots the key, so the post-loop check
	// steps one below the range.
	if got := searchBoundary(f, 2, 3, 5); got != 2 {
		t.Errorf("searchBoundary(low=3, key=2) = %d, want 2", got)
	}
}

func TestSearchBoundary_SingleElementRange(t *testing.T) {
	f := func(x uint64) float64 { return float64(x) }

	if got := searchBoundary(f, 7, 4, 4); got != 4 {
		t.Errorf("searchBoundary(single, below key) = %d, want 4", got)
	}
	if got := searchBoundary(f, 1, 4, 4); got != 3 {
		t.Errorf("searchBoundary(single, above key) = %d, want 3", got)
	}
}

func TestSearchBoundary_NegatedView(t *testing.T) {
	// A decreasing tail becomes non-decreasing when negated, which is how
	// the evaluator searches the far side of the mode.
	masses := []float64{0.05, 0.1, 0.3, 0.4, 0.1, 0.05}
	f := func(x uint64) float64 { return -masses[x] }

	// Largest index in [3, 5] whose mass is still >= 0.1.
	if got := searchBoundary(f, -0.1, 3, 5); got != 4 {
		t.Errorf("searchBoundary(negated tail) = %d, want 4", got)
	}
}
