// Package common defines shared constants and sentinel errors used across
// client and server layers of userdirectory. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"net/http"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// User-facing errors. Their messages are returned to clients verbatim.
var (
	ErrUserNotFound             = NewStatusError(http.StatusNotFound, "The user was not found.")
	ErrIncorrectData            = NewStatusError(http.StatusBadRequest, "Incorrect data.")
	ErrEmailTaken               = NewStatusError(http.StatusConflict, "The email is already in use.")
	ErrUserBanned               = NewStatusError(http.StatusForbidden, "The user is banned.")
	ErrIdentifierSpaceExhausted = NewStatusError(http.StatusInternalServerError, "Identifier space exhausted.")
)
