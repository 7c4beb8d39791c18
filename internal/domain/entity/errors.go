package entity

import "errors"

// Error kinds surfaced by the remote authority. The HTTP client maps status
// codes and connection failures onto these so callers can branch with
// errors.Is instead of inspecting transport details.
var (
	// ErrTransport indicates a network or connection level failure.
	ErrTransport = errors.New("transport failure")

	// ErrUnauthorized indicates the authority rejected the bearer credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller lacks privilege for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the target album vanished on the authority side.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a malformed filter or vote value.
	ErrValidation = errors.New("validation failed")
)
