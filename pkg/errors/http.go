package errors

import "net/http"

// HTTPError is an error the delivery layer can write verbatim to a client.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError whose code mirrors the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
