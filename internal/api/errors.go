package api

import "errors"

// Common books API errors.
var (
	// ErrNotFound is returned when a book does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the session's token is rejected.
	ErrUnauthorized = errors.New("unauthorized — session expired, sign in again")
	// ErrForbidden is returned when the token lacks access to the record.
	ErrForbidden = errors.New("forbidden")
)
