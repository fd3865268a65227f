package tables

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/quotevault/quotevault/internal/adapters/clients"
	"github.com/quotevault/quotevault/internal/domain"
)

// apiError is the error envelope the table API returns. The REST surface
// uses code/message/details; the auth surface uses msg or
// error_description depending on the failure.
type apiError struct {
	Code             string `json:"code,omitempty"`
	Message          string `json:"message,omitempty"`
	Details          string `json:"details,omitempty"`
	Hint             string `json:"hint,omitempty"`
	Msg              string `json:"msg,omitempty"`
	ErrorCode        string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// text returns the most specific human-readable message available.
func (e *apiError) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.ErrorCode != "":
		return e.ErrorCode
	default:
		return ""
	}
}

// parseAPIError attempts to parse an error body. Returns nil when the
// body is empty or not the expected shape.
func parseAPIError(body io.Reader) *apiError {
	if body == nil {
		return nil
	}

	var e apiError
	if err := json.NewDecoder(body).Decode(&e); err != nil {
		return nil
	}

	if e.text() == "" && e.Code == "" {
		return nil
	}

	return &e
}

// mapHTTPError maps an HTTP response or client error to a domain error.
// resp may be nil for transport errors; clientErr may be nil when the
// response carried a non-success status.
func mapHTTPError(resp *http.Response, clientErr error, operation, entityID string) error {
	if clientErr != nil {
		return mapClientError(clientErr, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var apiErr *apiError
	if resp.Body != nil {
		apiErr = parseAPIError(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, apiErr, operation, entityID)
}

// mapClientError translates client-level failures.
func mapClientError(err error, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

// mapStatusCode translates status codes to domain errors.
func mapStatusCode(status int, apiErr *apiError, operation, entityID string) error {
	message := fmt.Sprintf("%s failed with status %d", operation, status)
	if apiErr != nil && apiErr.text() != "" {
		message = apiErr.text()
	}

	switch status {
	case http.StatusNotFound:
		return domain.NewNotFoundError(serviceName, entityID)

	case http.StatusConflict:
		return domain.NewConflictError(serviceName, message)

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewValidationError(operation, message)

	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewAuthError(message)

	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}
