package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrNoPublisher    = errors.New("catalog publishing is not configured")
)

// An UpstreamRequestError is returned when the backend answered with an
// errors payload.
type UpstreamRequestError struct {
	Status  int
	Message string
	// Request is the GraphQL document or REST path that was sent.
	Request string
}

func (e *UpstreamRequestError) Error() string {
	return fmt.Sprintf("upstream request failed: status %d: %s", e.Status, e.Message)
}

// A TransportError is returned when the call failed before a structured
// upstream error could be read, e.g. on network or decoding failures.
type TransportError struct {
	Cause   error
	Request string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream transport failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
