package errors

import "errors"

// This package defines the application's sentinel errors. Services wrap them
// with context (`fmt.Errorf("%w: ...", ErrValidation)`) and the API layer maps
// them to HTTP status codes with `errors.Is()`. Anything that wraps none of
// them is reported as 500 Internal Server Error.

var (
	// ErrNotFound signifies that a requested resource could not be located,
	// or that it exists but belongs to another user. Both cases are reported
	// identically so callers cannot probe for foreign chat ids.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies malformed or missing input. The wrapped message
	// is meant for the client.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies a uniqueness violation (username, email, chat id).
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized signifies missing or wrong credentials.
	// Mapped to 401 Unauthorized.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPermission signifies a presented bearer token that is malformed,
	// expired or signed with another key.
	// Mapped to 403 Forbidden.
	ErrPermission = errors.New("permission denied")
)
