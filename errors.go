package satlist

import (
	"errors"
	"fmt"
)

// Application error codes. EUNAVAILABLE marks transport-level fetch
// failures and EPROTOCOL non-OK HTTP responses; the orchestrator uses
// the distinction to decide between aborting a retrieval and skipping
// a single page.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EPROTOCOL    = "protocol"
	EUNAVAILABLE = "unavailable"
	EINTERNAL    = "internal"
)

// Error represents an application error with a machine-readable code.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("satlist error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode returns the code of the error, EINTERNAL for non-application
// errors, or an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, a generic message for
// non-application errors, or an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
