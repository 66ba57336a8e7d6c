package common

import (
	"errors"
	"fmt"
)

// StatusError is an error carrying an HTTP-equivalent status code and a
// human-readable message. The boundary layer translates it into a response
// with the same code and message.
type StatusError struct {
	Code    int
	Message string
}

func NewStatusError(code int, message string) *StatusError {
	return &StatusError{Code: code, Message: message}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Is reports whether target is a StatusError with the same code and message,
// so that copies of the sentinel values still match.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// StatusCode returns the status code carried by err, or 0 if err does not
// wrap a StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
