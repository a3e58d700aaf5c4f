package domain

import "errors"

var (
	// Auth failures surfaced verbatim to the client.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("access forbidden")

	// Data failures. ErrUpstream covers both "unreachable" and remote
	// constraint violations — the remote service does not let us tell them
	// apart, so they share one sentinel and the real cause is logged.
	ErrNotFound = errors.New("record not found")
	ErrUpstream = errors.New("upstream database request failed")

	// ErrIncompleteKey rejects composite-key operations that are missing
	// one or more key components.
	ErrIncompleteKey = errors.New("incomplete composite key")
)
