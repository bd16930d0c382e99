// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Identity errors. The API identifies callers by an opaque user reference
// supplied on every request; these cover its absence or malformation.
var (
	// ErrMissingUserIdentity is returned when the request carries no user reference.
	ErrMissingUserIdentity = errors.New("missing user identity")

	// ErrInvalidUserIdentity is returned when the user reference is not a valid UUID.
	ErrInvalidUserIdentity = errors.New("invalid user identity")
)

// IdentityErrorCode defines error codes for identity errors.
type IdentityErrorCode string

const (
	ErrCodeMissingUserIdentity IdentityErrorCode = "USR-010001"
	ErrCodeInvalidUserIdentity IdentityErrorCode = "USR-010002"
)
