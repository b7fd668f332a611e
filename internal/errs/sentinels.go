// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict indicates optimistic concurrency failure (expected version mismatch).
	ErrVersionConflict = errors.New("version conflict")

	// ErrUnauthorized indicates a missing or unresolvable credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an authenticated principal without the required capability.
	ErrForbidden = errors.New("forbidden")

	// ErrTokenExpired indicates a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed indicates a token that could not be parsed at all.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrSignatureInvalid indicates a parseable token whose signature check failed.
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrInvalidStatus indicates an unrecognized application status value.
	ErrInvalidStatus = errors.New("invalid application status")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)

// StaleVersionError reports a failed versioned update together with the version
// currently stored, so the caller can re-fetch and re-decide.
type StaleVersionError struct {
	Current int64
}

func (e *StaleVersionError) Error() string {
	return fmt.Sprintf("stale version, current version is %d", e.Current)
}

// Is makes StaleVersionError match ErrVersionConflict via errors.Is.
func (e *StaleVersionError) Is(target error) bool { return target == ErrVersionConflict }

// InvalidParameterError reports a client value that failed boundary parsing,
// naming the offending field and the expected format.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}
