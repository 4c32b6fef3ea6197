package adapter

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is. Every non-2xx response is returned as a
// *ServiceError wrapping one of the status sentinels.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps dial, TLS and timeout failures where no response
	// was received.
	ErrTransport = errors.New("transport failure")
	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// ServiceError is a non-success response from the announcement service.
// Message is the service's own explanation, empty when it sent none.
type ServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.Err, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
