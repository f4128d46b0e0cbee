package fintrack

import "fmt"

// ValidationError reports user-supplied or decoded transaction fields that
// violate the ledger's construction rules. It is recoverable: the caller can
// retry with corrected input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// PersistenceError reports a failure to read or write the ledger backing
// file. It is surfaced but non-fatal: the in-memory ledger keeps working for
// the rest of the session.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot persist ledger to %q: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
