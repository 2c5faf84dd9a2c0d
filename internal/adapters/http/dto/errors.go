// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/signin-widget-helpers/internal/domain"
	"github.com/jsamuelsen/signin-widget-helpers/internal/platform/logging"
)

// ErrorResponse is the error envelope for all error responses. It has the
// same shape as the bodies the error normalizer produces, so widget clients
// can feed it straight back through normalization.
type ErrorResponse struct {
	// ErrorCode is a machine-readable error code (e.g., "VALIDATION_ERROR").
	ErrorCode string `json:"errorCode"`

	// ErrorSummary is a human-readable error message.
	ErrorSummary string `json:"errorSummary"`

	// ErrorCauses lists field-level problems, if any.
	ErrorCauses []domain.ErrorCause `json:"errorCauses,omitempty"`

	// ErrorID is the trace ID of the failed request.
	ErrorID string `json:"errorId,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates the requested route does not exist.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeMethodNotAllowed indicates the route exists for other methods.
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeUnsupportedLanguage indicates no requested language is supported.
	ErrorCodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates the request timed out.
	ErrorCodeTimeout = "TIMEOUT"

	// ErrorCodeBadRequest indicates the request was malformed.
	ErrorCodeBadRequest = "BAD_REQUEST"

	// ErrorCodeTooLarge indicates the request body exceeded the size limit.
	ErrorCodeTooLarge = "REQUEST_TOO_LARGE"
)

// MessageInternal is the summary of errors whose details must not leak.
const MessageInternal = "an internal error occurred"

// NewErrorResponse creates a new error response with the given code and summary.
func NewErrorResponse(code, summary string) *ErrorResponse {
	return &ErrorResponse{
		ErrorCode:    code,
		ErrorSummary: summary,
	}
}

// NewErrorResponseWithCauses creates an error response listing its causes.
func NewErrorResponseWithCauses(code, summary string, causes []domain.ErrorCause) *ErrorResponse {
	return &ErrorResponse{
		ErrorCode:    code,
		ErrorSummary: summary,
		ErrorCauses:  causes,
	}
}

// WithTraceID sets the error ID to the trace ID.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.ErrorID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnsupportedLanguage:
		return http.StatusNotAcceptable
	case ErrorCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps an error to an error code and response.
// Unknown errors get a generic summary to avoid leaking internals.
func MapDomainError(err error) *ErrorResponse {
	var (
		validationErr *domain.ValidationError
		tooLarge      *http.MaxBytesError
	)

	switch {
	case errors.As(err, &tooLarge):
		return NewErrorResponse(ErrorCodeTooLarge, "request body too large")

	case IsValidationError(err):
		return NewErrorResponseWithCauses(ErrorCodeValidation, "request validation failed", ValidationCauses(err))

	case errors.As(err, &validationErr):
		cause := domain.ErrorCause{
			ErrorSummary: validationErr.Message,
			Reason:       "invalid",
			Location:     validationErr.Field,
			LocationType: "body",
		}

		return NewErrorResponseWithCauses(ErrorCodeValidation, err.Error(), []domain.ErrorCause{cause})

	case domain.IsValidation(err):
		return NewErrorResponse(ErrorCodeValidation, err.Error())

	case domain.IsUnsupportedLanguage(err):
		return NewErrorResponse(ErrorCodeUnsupportedLanguage, err.Error())

	case errors.Is(err, ErrBinding):
		return NewErrorResponse(ErrorCodeBadRequest, err.Error())

	default:
		return NewErrorResponse(ErrorCodeInternal, MessageInternal)
	}
}

// HandleError writes the error response for err, tagged with the trace ID.
// Internal errors are logged with their full message.
func HandleError(c *gin.Context, err error) {
	resp := MapDomainError(err)
	resp.WithTraceID(TraceID(c))

	status := HTTPStatusFromCode(resp.ErrorCode)
	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			"error", err.Error(),
			"trace_id", resp.ErrorID,
		)
	}

	c.JSON(status, resp)
}

// AbortWithErrorCode aborts the request chain with a specific error code.
func AbortWithErrorCode(c *gin.Context, code, summary string) {
	resp := NewErrorResponse(code, summary).WithTraceID(TraceID(c))
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}

// TraceID returns the OpenTelemetry trace ID of the request, if any.
func TraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}
