// Package errors defines the application error taxonomy shared by the
// delivery and usecase layers.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Submission errors
	ErrInvalidFormType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FORM_TYPE",
		"Invalid form type",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Required fields are missing",
		"",
	)

	ErrMalformedBody = NewBaseError(
		http.StatusInternalServerError,
		"MALFORMED_BODY",
		"Something went wrong",
		"",
	)

	ErrStoreWriteFailed = NewBaseError(
		http.StatusBadGateway,
		"STORE_WRITE_FAILED",
		"Failed to write submission record",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusBadGateway,
		"STORE_UNAVAILABLE",
		"Submission store is not available",
		"",
	)

	// Content errors
	ErrArticleNotFound = NewBaseError(
		http.StatusNotFound,
		"ARTICLE_NOT_FOUND",
		"Article not found",
		"",
	)

	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	// Access errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		"",
	)
)
