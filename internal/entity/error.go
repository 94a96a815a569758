package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("insufficient permissions")
	ErrConflict     = errors.New("resource conflicts with existing data")
	ErrInvalidData  = errors.New("invalid data")
	ErrNoToken      = errors.New("no access token set")
)

// APIError is a non-2xx backend response decoded into a value. Message holds
// the backend-supplied text when the envelope carries one, otherwise the
// calling operation's fallback text. Err is the status-mapped sentinel, so
// errors.Is(err, entity.ErrNotFound) works through the wrap chain.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
	Err        error
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("backend returned %d: %s (request_id=%s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
