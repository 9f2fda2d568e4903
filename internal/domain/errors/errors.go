// Package errors defines the application error taxonomy. Route-local errors
// carry a user-facing message and an HTTP status so the delivery layer can
// turn them into a flash plus redirect; anything else bubbles to the global
// handler and renders the generic error page.
package errors

import (
	"net/http"

	"medlink/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. The credential failures are deliberately generic so
// a caller can never tell "unknown identifier" from "wrong password".
var (
	ErrInvalidHospitalCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	ErrInvalidPatientCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
	)

	ErrHospitalAlreadyExists = NewBaseError(
		http.StatusConflict,
		"HOSPITAL_ALREADY_EXISTS",
		"A hospital with the given email or username is already registered",
	)

	ErrPatientAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PATIENT_ALREADY_EXISTS",
		"A user with the given username is already registered",
	)

	ErrPatientNotFound = NewBaseError(
		http.StatusNotFound,
		"PATIENT_NOT_FOUND",
		"User not found",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Missing or invalid input",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Your session is no longer valid",
	)

	ErrPatientUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PATIENT_UPDATE_FAILED",
		"Failed to update user details",
	)

	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_FAILED",
		"Something went wrong",
	)
)

// NewDatabaseExecuteError wraps an infrastructure failure so it surfaces as a
// generic operator-visible error with the original cause attached.
func NewDatabaseExecuteError(cause error, message string) error {
	return errors.Wrapf(ErrDatabaseExecute, "%s: %v", message, cause)
}

// NewValidationError reports a validation failure naming the offending field.
func NewValidationError(field string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		field+" is required",
	)
}
