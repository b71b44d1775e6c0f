package dist

import (
	"math"
	"testing"
)

func approxEq(a, b, tol float64) bool {
	if b == 0 {
		return math.Abs(a) <= tol
	}
	return math.Abs(a-b) <= tol*math.Abs(b)
}

func TestPMF_SmallSupport(t *testing.T) {
	// Binomial(5, 0.2) masses, computed by hand.
	b := NewBinomial(5, 0.2)
	want := []float64{0.32768, 0.4096, 0.2048, 0.0512, 0.0064, 0.00032}

	for k, w := range want {
		got := b.PMF(uint64(k))
		if !approxEq(got, w, 1e-12) {
			t.Errorf("PMF(%d) = %v, want %v", k, got, w)
		}
	}

	if got := b.PMF(6); got != 0 {
		t.Errorf("PMF beyond support = %v, want 0", got)
	}
}

func TestPMF_SumsToOne(t *testing.T) {
	b := NewBinomial(200, 0.37)

	sum := 0.0
	for k := uint64(0); k <= 200; k++ {
		sum += b.PMF(k)
	}
	if !approxEq(sum, 1.0, 1e-10) {
		t.Errorf("PMF sum over support = %v, want 1", sum)
	}
}

func TestCDFAndSF_Complement(t *testing.T) {
	b := NewBinomial(50, 0.3)

	for k := uint64(0); k <= 50; k++ {
		c, s := b.CDF(k), b.SF(k)
		if !approxEq(c+s, 1.0, 1e-10) {
			t.Errorf("CDF(%d)+SF(%d) = %v, want 1", k, k, c+s)
		}
	}

	if got := b.CDF(50); got != 1 {
		t.Errorf("CDF at n = %v, want 1", got)
	}
	if got := b.SF(50); got != 0 {
		t.Errorf("SF at n = %v, want 0", got)
	}
}

func TestCDF_MatchesSummation(t *testing.T) {
	b := NewBinomial(80, 0.65)

	sum := 0.0
	for k := uint64(0); k <= 80; k++ {
		sum += b.PMF(k)
		if got := b.CDF(k); !approxEq(got, sum, 1e-9) {
			t.Errorf("CDF(%d) = %v, summation gives %v", k, got, sum)
		}
	}
}

func TestSF_DeepTailDoesNotCancel(t *testing.T) {
	// P(X > 490) for Binomial(500, 0.5) is around 1e-119; a 1-CDF
	// implementation would return exactly 0 here.
	b := NewBinomial(500, 0.5)

	got := b.SF(490)
	if got <= 0 || got > 1e-100 {
		t.Errorf("SF(490) = %v, want a positive value below 1e-100", got)
	}
}

func TestDegenerateProbabilities(t *testing.T) {
	zero := NewBinomial(10, 0)
	if got := zero.PMF(0); got != 1 {
		t.Errorf("p=0: PMF(0) = %v, want 1", got)
	}
	if got := zero.PMF(3); got != 0 {
		t.Errorf("p=0: PMF(3) = %v, want 0", got)
	}
	if got := zero.CDF(0); got != 1 {
		t.Errorf("p=0: CDF(0) = %v, want 1", got)
	}
	if got := zero.SF(0); got != 0 {
		t.Errorf("p=0: SF(0) = %v, want 0", got)
	}

	one := NewBinomial(10, 1)
	if got := one.PMF(10); got != 1 {
		t.Errorf("p=1: PMF(10) = %v, want 1", got)
	}
	if got := one.PMF(9); got != 0 {
		t.Errorf("p=1: PMF(9) = %v, want 0", got)
	}
	if got := one.CDF(9); got != 0 {
		t.Errorf("p=1: CDF(9) = %v, want 0", got)
	}
	if got := one.SF(9); got != 1 {
		t.Errorf("p=1: SF(9) = %v, want 1", got)
	}
}
