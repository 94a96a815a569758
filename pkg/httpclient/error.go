package httpclient

import "fmt"

// StatusError is returned for any non-2xx response. Body holds the raw
// response so callers can decode the backend's error envelope.
type StatusError struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

func (e *StatusError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("unexpected status %d (request_id=%s)", e.StatusCode, e.RequestID)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}
