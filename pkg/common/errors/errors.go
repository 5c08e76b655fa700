package errors

import "errors"

// Common error types used across the pollflow library

var (
	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrSent indicates that a single-value channel already delivered its value
	ErrSent = errors.New("value already sent")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsTerminal returns true if the error indicates a permanent condition
// that retrying the operation cannot resolve
func IsTerminal(err error) bool {
	return errors.Is(err, ErrClosed) || errors.Is(err, ErrSent)
}
