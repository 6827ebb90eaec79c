// Package common defines shared constants and sentinel errors used across
// the todokeeper server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Registration and login.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// Access control.
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")

	// Underlying record or blob store failure.
	ErrStorage     = errors.New("storage error")
	ErrUnsupported = errors.New("not supported by the configured backend")

	// Input validation.
	ErrValidation   = errors.New("validation error")
	ErrUnknownField = errors.New("unknown field")
)
