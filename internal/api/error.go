package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"

	json "github.com/goccy/go-json"
)

// errorEnvelope covers both error shapes the backend produces: FastAPI's
// {"detail": ...} and the older {"message": ...}.
type errorEnvelope struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// apiError turns a transport result into the uniform error shape: non-2xx
// responses become *entity.APIError carrying the backend message when the
// envelope has one, the per-operation fallback otherwise. Anything else
// propagates wrapped.
func apiError(op string, err error, fallback string) error {
	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	message := fallback
	var envelope errorEnvelope
	if len(statusErr.Body) > 0 && json.Unmarshal(statusErr.Body, &envelope) == nil {
		switch {
		case envelope.Detail != "":
			message = envelope.Detail
		case envelope.Message != "":
			message = envelope.Message
		}
	}

	return fmt.Errorf("%s: %w", op, &entity.APIError{
		StatusCode: statusErr.StatusCode,
		Message:    message,
		RequestID:  statusErr.RequestID,
		Err:        sentinel(statusErr.StatusCode),
	})
}

func sentinel(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return entity.ErrInvalidData
	case http.StatusUnauthorized:
		return entity.ErrUnauthorized
	case http.StatusForbidden:
		return entity.ErrForbidden
	case http.StatusNotFound:
		return entity.ErrNotFound
	case http.StatusConflict:
		return entity.ErrConflict
	}
	return nil
}
