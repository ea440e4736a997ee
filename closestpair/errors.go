package closestpair

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch with errors.Is; implementations attach
// call-site context with %w.
var (
	// ErrTooFewPoints indicates that fewer than two points were supplied,
	// so no pair exists.
	ErrTooFewPoints = errors.New("closestpair: at least two points required")

	// ErrBadOptions indicates an Options value outside its domain
	// (e.g., negative ParallelCutoff).
	ErrBadOptions = errors.New("closestpair: invalid options")
)

// fmtTooFew wraps ErrTooFewPoints with the calling method and input size.
func fmtTooFew(method string, n int) error {
	return fmt.Errorf("%s: got %d point(s): %w", method, n, ErrTooFewPoints)
}
