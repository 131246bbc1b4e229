package domain

import "errors"

// Error kinds shared by every layer. Callers wrap them with fmt.Errorf and
// match them with errors.Is.
var (
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("not found")
	// ErrTransient marks store failures that are safe to retry.
	ErrTransient = errors.New("transient store failure")
)
