package cards

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for input validation failures.
const (
	// ErrCodeCapacity means more explicit coordinate claims exist than grid slots.
	ErrCodeCapacity Code = "CAPACITY_EXCEEDED"

	// ErrCodeCoordinate means an explicit coordinate lies outside the grid.
	ErrCodeCoordinate Code = "INVALID_COORDINATE"

	// ErrCodeAmbiguousDefault means more than one record omitted coords.
	ErrCodeAmbiguousDefault Code = "AMBIGUOUS_DEFAULT"

	// ErrCodeInvalidInput means the input file could not be decoded.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// newError creates an *Error with the given code and formatted message.
func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// wrapError creates an *Error wrapping an existing error.
func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsCode reports whether any error in err's tree carries the given code.
// Validation failures are aggregated with errors.Join, so a joined error
// matches every code it contains.
func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) && e.Code == code {
		return true
	}
	// errors.As stops at the first match in a joined tree; walk siblings too.
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, sub := range joined.Unwrap() {
			if IsCode(sub, code) {
				return true
			}
		}
	}
	return false
}
