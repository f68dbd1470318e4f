// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Status is not serialized; it selects the HTTP status code of the response.
type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string { return e.Detail }

// New returns a validation/conflict error (400).
func New(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Detail: msg}
}

// NewUnauthorized returns an authentication failure (401).
func NewUnauthorized(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Detail: msg}
}

// NewForbidden returns a permission failure (403): authenticated but not
// authorized for this resource or action.
func NewForbidden(msg string) *APIError {
	return &APIError{Status: http.StatusForbidden, Detail: msg}
}

// NewNotFound returns a not-found failure (404), also used for entities
// excluded by visibility rules such as soft-deleted products.
func NewNotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Detail: msg}
}

// StatusOf maps an error to the HTTP status it should produce. Untyped errors
// default to 400: the API does not distinguish expected business rejections
// from unexpected faults beyond status code and message.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadRequest
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
