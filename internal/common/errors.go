// Package common defines shared constants and sentinel errors used across
// client and server layers of registerface. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Face login errors.
	ErrFaceNotEnrolled = errors.New("face not enrolled")
	ErrFaceMismatch    = errors.New("face does not match")
	ErrTooManyAttempts = errors.New("too many failed attempts")
	ErrInvalidFaceData = errors.New("invalid face data")
)
