package apperr

import "errors"

// Sentinel errors for the failure taxonomy. Callers classify with errors.Is
// and add context with fmt.Errorf("...: %w", ...).
var (
	// ErrNotFound: the addressed record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyResult: the query matched nothing. Distinct from ErrNotFound on
	// purpose: "user has no threads" is reported as a failure, not an empty
	// list. Kept as an explicit, tested policy.
	ErrEmptyResult = errors.New("empty result")

	// ErrValidation: the write payload is malformed.
	ErrValidation = errors.New("invalid input")

	// ErrConflict: the store rejected the write (constraint violation).
	ErrConflict = errors.New("conflict")

	// ErrUnavailable: transport failure talking to the store.
	ErrUnavailable = errors.New("storage unavailable")
)
