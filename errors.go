package storeintel

import (
	"errors"
	"fmt"
)

// Application error codes. These map to the failure classes a caller
// can meaningfully branch on.
const (
	EINVALID     = "invalid"     // malformed input, rejected before any I/O
	EUNREACHABLE = "unreachable" // transport-level failure (DNS, connect, timeout)
	ENOTFOUND    = "not_found"   // HTTP 404
	EBADSTATUS   = "bad_status"  // other non-200 HTTP status
	EEXTRACTION  = "extraction"  // internal fault during an extraction stage
	ETIMEOUT     = "timeout"     // bulk task exceeded its outer deadline
	EINTERNAL    = "internal"    // anything else
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("storeintel error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
