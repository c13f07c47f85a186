package httperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vmdantas/mail-triage-go/internal/extract"
	"github.com/vmdantas/mail-triage-go/internal/gemini"
	"github.com/vmdantas/mail-triage-go/internal/upload"
)

// ErrorCode identifies an API error class.
type ErrorCode string

const (
	// ErrorCodeInternal is the catch-all internal error code.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrorCodeValidation marks a request body that failed validation.
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrorCodeHTTPRateLimit marks a throttled request.
	ErrorCodeHTTPRateLimit ErrorCode = "HTTP_RATE_LIMIT"
	// ErrorCodeInvalidInput marks a request rejected before processing.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrorCodeMissingField marks a required field absent from the request.
	ErrorCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrorCodeDependencyMissing marks a request that needs an optional
	// capability this deployment runs without.
	ErrorCodeDependencyMissing ErrorCode = "DEPENDENCY_MISSING"
	// ErrorCodeModelUnavailable marks an external-model endpoint called
	// without a configured model.
	ErrorCodeModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"
	// ErrorCodeModelTimeout marks an external-model call that timed out.
	ErrorCodeModelTimeout ErrorCode = "MODEL_TIMEOUT"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	ErrorCode string         `json:"error_code"`
	ErrorType string         `json:"error_type"`
	Message   string         `json:"message"`
	RequestID *string        `json:"request_id"`
	Details   map[string]any `json:"details"`
}

// Error is the internal standard error type.
type Error struct {
	Code    ErrorCode
	Status  int
	Type    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

// Response converts any error into an HTTP status and JSON body.
func Response(err error, requestID string) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternalError("unknown error")
	}

	var requestIDPtr *string
	if requestID != "" {
		requestIDPtr = &requestID
	}

	return apiErr.Status, ErrorResponse{
		ErrorCode: string(apiErr.Code),
		ErrorType: apiErr.Type,
		Message:   apiErr.Message,
		RequestID: requestIDPtr,
		Details:   apiErr.Details,
	}
}

// FromError maps known sentinel errors onto the API taxonomy. Unknown
// errors become internal errors.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, gemini.ErrNotConfigured) {
		return NewModelUnavailable("External model is not configured")
	}

	if errors.Is(err, extract.ErrPDFSupportDisabled) {
		return NewDependencyMissing("pdf_extraction", "PDF extraction is disabled on this deployment")
	}

	if errors.Is(err, upload.ErrUnsafeFilename) {
		return NewInvalidInput("Unsafe upload filename")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewModelTimeout("External model request timed out")
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationError(err)
	}

	return NewInternalError(err.Error())
}

// NewInternalError creates the catch-all internal error.
func NewInternalError(message string) *Error {
	return &Error{
		Code:    ErrorCodeInternal,
		Status:  http.StatusInternalServerError,
		Type:    "InternalError",
		Message: message,
		Details: nil,
	}
}

// NewValidationError wraps a body validation failure.
func NewValidationError(err error) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Status:  http.StatusUnprocessableEntity,
		Type:    "ValidationError",
		Message: "Input validation failed",
		Details: validationDetails(err),
	}
}

// NewMissingField creates an error for a required field left empty.
func NewMissingField(field string) *Error {
	return &Error{
		Code:    ErrorCodeMissingField,
		Status:  http.StatusBadRequest,
		Type:    "MissingFieldError",
		Message: fmt.Sprintf("Field '%s' required", field),
		Details: map[string]any{"field": field},
	}
}

// NewInvalidInput creates a generic bad-request error.
func NewInvalidInput(message string) *Error {
	return &Error{
		Code:    ErrorCodeInvalidInput,
		Status:  http.StatusBadRequest,
		Type:    "InvalidInputError",
		Message: message,
		Details: nil,
	}
}

// NewDependencyMissing creates an error for a request that needs a
// capability switched off in this deployment.
func NewDependencyMissing(capability string, message string) *Error {
	return &Error{
		Code:    ErrorCodeDependencyMissing,
		Status:  http.StatusUnprocessableEntity,
		Type:    "DependencyMissingError",
		Message: message,
		Details: map[string]any{"capability": capability},
	}
}

// NewModelUnavailable creates an error for external-model endpoints when no
// model is configured.
func NewModelUnavailable(message string) *Error {
	return &Error{
		Code:    ErrorCodeModelUnavailable,
		Status:  http.StatusServiceUnavailable,
		Type:    "ModelUnavailableError",
		Message: message,
		Details: nil,
	}
}

// NewModelTimeout creates an error for a timed-out external-model call.
func NewModelTimeout(message string) *Error {
	return &Error{
		Code:    ErrorCodeModelTimeout,
		Status:  http.StatusGatewayTimeout,
		Type:    "ModelTimeoutError",
		Message: message,
		Details: nil,
	}
}

// NewRateLimitExceeded creates the throttling error.
func NewRateLimitExceeded(details map[string]any) *Error {
	return &Error{
		Code:    ErrorCodeHTTPRateLimit,
		Status:  http.StatusTooManyRequests,
		Type:    "HTTPRateLimitExceededError",
		Message: "Rate limit exceeded",
		Details: details,
	}
}

// FieldError describes one failed validation constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

func validationDetails(err error) map[string]any {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]FieldError, 0, len(validationErrors))
		for _, validationErr := range validationErrors {
			fields = append(fields, FieldError{
				Field:   validationErr.Field(),
				Message: validationErr.Error(),
				Value:   validationErr.Value(),
			})
		}
		return map[string]any{"errors": fields}
	}

	return map[string]any{
		"errors": []FieldError{
			{
				Field:   "body",
				Message: err.Error(),
				Value:   nil,
			},
		},
	}
}
