package errors

// ValidateDimensions checks that grid extents are strictly positive.
// Both rectangular (width × height) and polar (rings × 1) constructors
// funnel through this check before allocating cells.
func ValidateDimensions(extents ...int) error {
	for _, n := range extents {
		if n <= 0 {
			return New(ErrCodeInvalidDimensions, "grid extents must be positive, got %d", n)
		}
	}
	return nil
}

// ValidateProbability checks that p is a valid probability in [0, 1].
// Used by the braid post-processor and its CLI flag.
func ValidateProbability(p float64) error {
	if p < 0 || p > 1 {
		return New(ErrCodeInvalidInput, "probability must be in [0, 1], got %g", p)
	}
	return nil
}
