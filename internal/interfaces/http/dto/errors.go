package dto

import (
	"net/http"
	"strings"
)

// Error codes produced directly by the HTTP layer.
// Domain error codes (NOT_FOUND, INVALID_STATE, ...) pass through unchanged
// so clients can distinguish business failures programmatically.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request body validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeUnauthorized is used when authentication is required but missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeRequestTooLarge is used when the request body exceeds the size limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps known error codes to HTTP status codes.
// Workflow violations surface as 422 so they are distinguishable from
// malformed input; duplicate creations surface as 409.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	"INVALID_STATE":         http.StatusUnprocessableEntity,
	"ALREADY_PAID":          http.StatusUnprocessableEntity,
	"CLASSIFIER_MISMATCH":   http.StatusUnprocessableEntity,
	"ARTICLE_NOT_REQUESTED": http.StatusUnprocessableEntity,
	"PAIR_NOT_QUOTED":       http.StatusUnprocessableEntity,
	"SUPPLIER_NOT_INVITED":  http.StatusUnprocessableEntity,

	"INVALID_INPUT":     http.StatusBadRequest,
	"DUPLICATE_ARTICLE": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code. Codes not in
// the table fall back on naming conventions shared by all domain packages.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "INVALID_"), strings.HasPrefix(code, "EMPTY_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
