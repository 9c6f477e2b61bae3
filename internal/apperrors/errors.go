package apperrors

import (
	"errors"
	"net/http"
)

// Error classes
var (
	// Local validation, rejected before any network call
	ErrValidationFailed = errors.New("validation failed")
	ErrAlreadyResponded = errors.New("request already responded to")
	ErrAlreadyConnected = errors.New("an active request already exists for this alumnus")

	// Lookup errors
	ErrRequestNotFound      = errors.New("mentorship request not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotEventTyped        = errors.New("notification has no event details")

	// Remote errors
	ErrRemoteFailure     = errors.New("portal backend rejected the call")
	ErrRemoteUnavailable = errors.New("portal backend unreachable")
)

// CustomError carries an error class plus the message shown to the user.
type CustomError struct {
	Err        error
	Message    string
	StatusCode int // upstream HTTP status, zero when the call never completed
	Cause      error
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the class and the underlying cause to errors.Is/As.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCause attaches the lower-level error that triggered this one.
func (e *CustomError) WithCause(cause error) *CustomError {
	e.Cause = cause
	return e
}

// WithStatusCode records the upstream HTTP status.
func (e *CustomError) WithStatusCode(code int) *CustomError {
	e.StatusCode = code
	return e
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return NewCustomError(ErrValidationFailed, message)
}

// Message returns the user-facing text of err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

// IsRecoverable reports whether err came from the remote round trip, which
// the engine answers with a resync rather than a hard failure.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrRemoteFailure) || errors.Is(err, ErrRemoteUnavailable)
}

// HTTPStatus maps an error class to the status the BFF answers with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, ErrRequestNotFound), errors.Is(err, ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyResponded), errors.Is(err, ErrAlreadyConnected), errors.Is(err, ErrNotEventTyped):
		return http.StatusConflict
	case errors.Is(err, ErrRemoteFailure), errors.Is(err, ErrRemoteUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
