// Package errors defines the application error taxonomy: every failure
// surfaced to a user passes through here so the delivery layer can render a
// consistent status, business code and message.
package errors

import (
	"net/http"

	"artify/internal/errors"
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

// WithDetails adds detailed error information
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
	// Session-related errors
	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"You must be logged in",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please log in again",
		"",
	)

	ErrSessionResolving = NewBaseError(
		http.StatusServiceUnavailable,
		"SESSION_RESOLVING",
		"Session state is still being resolved",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to access this page",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered",
		"",
	)

	ErrAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"Authentication failed",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Google sign-in failed",
		"",
	)

	// Password policy errors, checked before any request leaves the client.
	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 6 characters",
		"",
	)

	ErrPasswordNoUppercase = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_NO_UPPERCASE",
		"Must have an Uppercase letter in the password",
		"",
	)

	ErrPasswordNoLowercase = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_NO_LOWERCASE",
		"Must have a Lowercase letter in the password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Submitted data failed validation",
		"",
	)

	// Collection errors
	ErrLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"LOAD_FAILED",
		"Failed to load",
		"",
	)

	ErrDeleteFailed = NewBaseError(
		http.StatusBadGateway,
		"DELETE_FAILED",
		"Failed to delete",
		"",
	)

	ErrUpdateFailed = NewBaseError(
		http.StatusBadGateway,
		"UPDATE_FAILED",
		"Failed to update",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Image upload failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// RemoteError represents a non-2xx response from the backend API, carrying
// the server-provided message when the error body had one.
type RemoteError struct {
	status  int
	message string
	details string
}

// NewRemoteError creates a backend-response error. When the server supplied
// no message the generic one is used.
func NewRemoteError(status int, message, details string) AppError {
	if message == "" {
		message = "The server could not complete the request"
	}

	return &RemoteError{status: status, message: message, details: details}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code reported by the backend
func (e *RemoteError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *RemoteError) ErrorCode() string {
	return "REMOTE_ERROR"
}

// Message returns the user-friendly error message
func (e *RemoteError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *RemoteError) Details() string {
	return e.details
}

// DecodeError represents a response body that matched none of the documented
// payload shapes. The client fails loudly here instead of guessing.
type DecodeError struct {
	endpoint string
	details  string
}

// NewDecodeError creates a payload-shape error for the given endpoint.
func NewDecodeError(endpoint, details string) AppError {
	return &DecodeError{endpoint: endpoint, details: details}
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return "unexpected response shape from " + e.endpoint
}

// HTTPCode returns the HTTP status code
func (e *DecodeError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DecodeError) ErrorCode() string {
	return "DECODE_FAILED"
}

// Message returns the user-friendly error message
func (e *DecodeError) Message() string {
	return "The server returned an unexpected response"
}

// Details returns detailed error information
func (e *DecodeError) Details() string {
	return e.details
}
