package errors

import "math"

// ValidateSeed checks that n can start a Collatz sequence.
// Seeds below 1 never reach 1 (0 stays 0 under the even rule), so they are
// rejected up front.
func ValidateSeed(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidSeed, "seed must be >= 1, got %d", n)
	}
	return nil
}

// ValidateRange checks a batch range [start, start+count).
// The start seed is validated even when count is zero.
func ValidateRange(start, count int) error {
	if count < 0 {
		return New(ErrCodeInvalidRange, "count must be >= 0, got %d", count)
	}
	if err := ValidateSeed(start); err != nil {
		return err
	}
	if count > 0 && start > math.MaxInt-(count-1) {
		return New(ErrCodeInvalidRange, "range [%d, %d+%d) exceeds integer range", start, start, count)
	}
	return nil
}
