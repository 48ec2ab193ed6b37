package usecase

import "fmt"

// PreconditionError reports a booking action attempted out of order, e.g.
// checkout with no showtime selected. These surface to the caller as 422s.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

func failedPrecondition(format string, args ...any) error {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}
