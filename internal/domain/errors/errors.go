package errors

import (
	"net/http"

	"freightway/internal/errors"
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
	// Distance calculation errors
	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"No drivable route was found between the given addresses",
		"",
	)

	ErrRoutingProvider = NewBaseError(
		http.StatusBadGateway,
		"ROUTING_PROVIDER_ERROR",
		"The directions provider rejected the request",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many distance calculations, try again later",
		"",
	)

	// Input validation errors
	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Pickup and delivery coordinates must be valid lat/lng pairs",
		"",
	)

	ErrInvalidPriority = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRIORITY",
		"Route priority must be RECOMMEND, TIME or DISTANCE",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"The request is missing required fields or contains invalid values",
		"",
	)
)

// NewDatabaseExecuteError creates a database execution error with the
// underlying cause preserved in the details.
func NewDatabaseExecuteError(err error, message string) AppError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)
}
