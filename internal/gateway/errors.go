package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a claim id the backend does not know.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized reports a 401 on a protected resource. Callers must
	// drop to Anonymous and send the user to login.
	ErrUnauthorized = errors.New("authentication required")
)

// RejectionError is a non-2xx response carrying server-provided detail.
// Detail is the raw response body and is shown to the user verbatim.
type RejectionError struct {
	Status int
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("claims api returned status %d", e.Status)
	}
	return e.Detail
}

// IsRejection extracts the server detail from err when it is a rejection.
func IsRejection(err error) (*RejectionError, bool) {
	var re *RejectionError
	ok := errors.As(err, &re)
	return re, ok
}
