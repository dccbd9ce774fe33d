// Package patherrors defines the error kinds spec.md §7 distinguishes:
// configuration and invariant errors terminate the process, capacity and
// device errors propagate to the driver which may continue with
// subsequent queries.
package patherrors

import "errors"

// Sentinel kinds, compared with errors.Is against wrapped errors.
var (
	// ErrConfiguration marks missing/invalid dimensions or an unknown
	// input module. Fatal: the process exits with a diagnostic.
	ErrConfiguration = errors.New("configuration error")

	// ErrCapacity marks a grid or node table that exceeds available
	// memory. Propagates to the driver, which aborts the current query.
	ErrCapacity = errors.New("capacity error")

	// ErrDevice marks a parallel back-end failure (a worker in the batch
	// expansion pool returning an unrecoverable error). Propagates to the
	// driver, which aborts the current query.
	ErrDevice = errors.New("device error")

	// ErrInvariant marks a cross-solver mismatch: the sequential and
	// parallel solvers disagree on success or cost. Indicates a bug and
	// is fatal.
	ErrInvariant = errors.New("invariant violation")
)

// Kind classifies err as one of the sentinel kinds above. It returns "" for
// a nil err (e.g. a plain "no path" result, which is not an error at all
// per spec.md §7) and "unknown" for an error that wraps none of them.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrCapacity):
		return "capacity"
	case errors.Is(err, ErrDevice):
		return "device"
	case errors.Is(err, ErrInvariant):
		return "invariant"
	default:
		return "unknown"
	}
}

// Fatal reports whether err's kind should terminate the process rather
// than simply fail the current query.
func Fatal(err error) bool {
	return errors.Is(err, ErrConfiguration) || errors.Is(err, ErrInvariant)
}
