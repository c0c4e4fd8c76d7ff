// Package errors provides standardized error handling for the restaurant API and the places client.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Caller input errors
const (
	ErrCodeInvalidQuery       ErrorCode = "INVALID_QUERY"
	ErrCodeMissingPlaceID     ErrorCode = "MISSING_PLACE_ID"
	ErrCodeInvalidRequestBody ErrorCode = "INVALID_REQUEST_BODY"
)

// Upstream (places API) errors
const (
	ErrCodeUpstreamUnavailable  ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstreamStatus       ErrorCode = "UPSTREAM_STATUS"
	ErrCodeUpstreamDecodeFailed ErrorCode = "UPSTREAM_DECODE_FAILED"
	ErrCodeRestaurantNotFound   ErrorCode = "RESTAURANT_NOT_FOUND"
	ErrCodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata sets a metadata key and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidQueryError is returned when a search query is empty after trimming.
func NewInvalidQueryError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidQuery,
		Message:   "Query cannot be empty",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingPlaceIDError is returned when a details lookup has no place_id.
func NewMissingPlaceIDError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingPlaceID,
		Message:   "place_id is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestBodyError wraps a body that is not valid JSON or fails schema validation.
func NewInvalidRequestBodyError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequestBody,
		Message:   "Invalid JSON data",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamUnavailableError creates a retryable transport error.
func NewUpstreamUnavailableError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamUnavailable,
		Message:   "Places API request failed",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamStatusError is used when the places API answers with a status other than OK.
func NewUpstreamStatusError(operation, status, message string) *StandardError {
	err := &StandardError{
		Code:      ErrCodeUpstreamStatus,
		Message:   fmt.Sprintf("Places API returned status %s", status),
		Details:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
	return err.WithMetadata("operation", operation).WithMetadata("status", status)
}

// NewUpstreamDecodeFailedError creates a non-retryable payload error.
func NewUpstreamDecodeFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamDecodeFailed,
		Message:   "Places API response could not be decoded",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewRestaurantNotFoundError(placeID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRestaurantNotFound,
		Message:   "Restaurant not found",
		Details:   fmt.Sprintf("placeId: %s", placeID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// HTTPStatus maps an error code to the status code the API layer answers with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidQuery, ErrCodeMissingPlaceID, ErrCodeInvalidRequestBody:
		return http.StatusBadRequest
	case ErrCodeRestaurantNotFound:
		return http.StatusNotFound
	case ErrCodeUpstreamUnavailable, ErrCodeUpstreamStatus, ErrCodeUpstreamDecodeFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "UPSTREAM"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "NOT_FOUND"):
		return "NOT_FOUND"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "MISSING"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

// IsRetryable reports whether err is a StandardError flagged as retryable.
func IsRetryable(err error) bool {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Retryable
	}
	return false
}
