package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRejected wraps business-rule refusals reported by the server; the
	// server's message follows it in the error text.
	ErrRejected     = errors.New("rejected")
	ErrFileTooLarge = errors.New("file too large")
	ErrNotFound     = errors.New("not found")
)
