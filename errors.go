package msdocs

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"  // unexpected internal failure
	EINVALID  = "invalid"   // malformed input or source file
	ENOTFOUND = "not_found" // missing file or unresolvable name
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("msdocs error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the given error, if it is an application
// error. Returns EINTERNAL for non-application errors and an empty string
// for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the given error, if it is an
// application error. Returns a generic message for non-application errors
// and an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
