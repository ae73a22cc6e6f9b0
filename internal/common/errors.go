// Package common defines shared sentinel errors used across the plugin's
// handlers, services, and storage adapters. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Request validation errors.
	ErrMalformedRequest = errors.New("malformed request")

	// Auth errors (missing or malformed bearer credential).
	ErrInvalidAuthHeaderFormat = errors.New("invalid authorization header format")
)
