package stats

import "binomtest/domain/core"

// Alternative selects which tail(s) of the distribution contribute to the
// p-value of a binomial test.
type Alternative int

const (
	// TwoSided counts deviations at least as extreme as the observation in
	// either direction from the expected count.
	TwoSided Alternative = iota
	// Less counts outcomes with at most the observed number of successes.
	Less
	// Greater counts outcomes with at least the observed number of successes.
	Greater
)

// String returns the conventional name of the alternative hypothesis.
func (a Alternative) String() string {
	switch a {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "two-sided"
	}
}

// ParseAlternative maps the conventional names (as used by the API surface)
// onto the closed enumeration.
func ParseAlternative(s string) (Alternative, error) {
	switch s {
	case "two-sided", "two_sided", "twosided":
		return TwoSided, nil
	case "less":
		return Less, nil
	case "greater":
		return Greater, nil
	}
	return TwoSided, core.NewAlternativeError(s)
}
