package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors for binomial test parameters
	ErrInvalidTrials       = errors.New("number of trials n must be > 0")
	ErrInvalidSuccessCount = errors.New("number of successes k must be <= n")
	ErrInvalidProbability  = errors.New("probability p must be in [0, 1]")

	// Request errors for the serving layer
	ErrUnknownAlternative = errors.New("unknown alternative hypothesis")
)

// Error constructors with context
func NewTrialsError(n uint64) error {
	return fmt.Errorf("%w: got n=%d", ErrInvalidTrials, n)
}

func NewSuccessCountError(k, n uint64) error {
	return fmt.Errorf("%w: got k=%d with n=%d", ErrInvalidSuccessCount, k, n)
}

func NewProbabilityError(p float64) error {
	return fmt.Errorf("%w: got p=%v", ErrInvalidProbability, p)
}

func NewAlternativeError(s string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAlternative, s)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTrials) ||
		errors.Is(err, ErrInvalidSuccessCount) ||
		errors.Is(err, ErrInvalidProbability)
}
