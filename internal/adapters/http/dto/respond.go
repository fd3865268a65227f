package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/quotevault/quotevault/internal/domain"
)

// GetTraceID returns the OpenTelemetry trace id for the request, or ""
// when no span is recording.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// HandleError writes the error envelope for a domain error. Unknown
// errors become a generic 500 so internals never leak.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	c.JSON(status, resp.WithTraceID(GetTraceID(c)))
}

// MapError maps a domain error to an HTTP status and error envelope.
func MapError(err error) (int, *ErrorResponse) {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnauthenticated(err):
		return http.StatusUnauthorized, NewErrorResponse(ErrorCodeUnauthorized, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}
