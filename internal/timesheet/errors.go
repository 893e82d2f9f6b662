package timesheet

import "errors"

// ErrNotFound is returned when a store operation references an id that is not
// present. The store is left unchanged.
var ErrNotFound = errors.New("entry not found")

// ErrPersistence marks a failed backend flush or load. The in-memory state is
// still valid and remains the source of truth; callers should surface this as
// a warning rather than roll anything back.
var ErrPersistence = errors.New("persistence failure")

// ValidationError reports rejected input: a session that works out to zero or
// negative hours, a negative break, or a malformed date or time. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid entry: " + e.Reason
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
