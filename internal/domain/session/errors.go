package session

import "errors"

var (
	// ErrSessionNotFound indicates the token doesn't map to a session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidInput indicates invalid input for session operations.
	ErrInvalidInput = errors.New("invalid session input")
)
