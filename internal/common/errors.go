// Package common defines shared constants and sentinel errors used across
// client and server layers of WhatsUT. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorValidation    = errors.New("validation error")
	ErrorCommunication = errors.New("communication failure")

	// Login taxonomy. The messages are shown to the user as is.
	ErrorBanned        = errors.New("user banned")
	ErrorWrongPassword = errors.New("wrong password")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
