package service

import "errors"

var (
	// ErrNotFoundOrUnauthorized is the only failure a fetch reports for a
	// non-success response. It deliberately hides whether the key exists.
	ErrNotFoundOrUnauthorized = errors.New("announcement not found or incorrect key")

	// ErrServiceUnreachable is returned when no response was received.
	ErrServiceUnreachable = errors.New("service unreachable")
)
