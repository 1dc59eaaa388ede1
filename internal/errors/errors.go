package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden is returned on role or ownership denial.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrInvalidCredentials is returned for a bad username/password pair.
	// The message is identical for unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrDuplicate is returned when a unique constraint (username, email) is hit.
	ErrDuplicate = errors.New("username or email already exists")
)

// ValidationError carries the name of the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// NewValidation creates a ValidationError for a single field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps a payload in a success envelope.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps a human-readable confirmation in a success envelope.
func OKMessage(msg string) Response {
	return Response{Success: true, Message: msg}
}

// Fail wraps an error string in a failure envelope.
func Fail(msg string) Response {
	return Response{Success: false, Error: msg}
}

// MapToHTTP translates a domain error to an HTTP status and client message.
// Unknown errors collapse to 500 with a generic message; detail stays in logs.
func MapToHTTP(err error) (int, Response) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, Fail(ve.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, Fail(ErrInvalidCredentials.Error())
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, Fail(ErrForbidden.Error())
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, Fail(ErrNotFound.Error())
	case errors.Is(err, ErrDuplicate):
		return http.StatusBadRequest, Fail(ErrDuplicate.Error())
	default:
		return http.StatusInternalServerError, Fail("internal server error")
	}
}
