// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorInvalidCategory   = errors.New("invalid category")
	ErrorInvalidDate       = errors.New("invalid date")
	ErrorUnknownCollection = errors.New("unknown collection")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Import errors. A malformed backup aborts the import with no partial
	// state change.
	ErrMalformedBackup = errors.New("malformed backup file")
)
