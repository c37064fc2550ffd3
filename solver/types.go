package solver

// Describes the error values reported by the solver.

import "errors"

// ErrNoSolution is reported when the exhaustive search within the given
// caps found no path. Raising the catalyst cap may help.
var ErrNoSolution = errors.New("no solution")

// ErrTruncated is reported when a cap was exceeded before the search
// completed. Retrying with larger caps may find a solution.
var ErrTruncated = errors.New("search truncated")

// ErrCancelled is reported when the context was cancelled mid-search.
var ErrCancelled = errors.New("search cancelled")

// An InternalError reports an invariant violation, such as a multiset
// count overflowing during the search. It indicates a bug.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
