package errors

import (
	"errors"
	"net/http"
)

// ErrEmailTaken is returned when a user is created with an email that is
// already registered.
var ErrEmailTaken = errors.New("User with this email already exists")

// NotFoundError marks a lookup that resolved to no document. The message is
// sent to clients verbatim, so it names the resource.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NotFound creates a NotFoundError with the given message.
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrorResponse is the uniform non-validation error body.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ValidationErrorResponse is the uniform validation error body with
// per-field messages.
type ValidationErrorResponse struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors"`
}

// MapErrorToHTTP maps domain errors to an HTTP status and message. Unknown
// errors are masked as internal server errors.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
