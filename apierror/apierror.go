package apierror

import (
	"fmt"
	"io"
	"net/http"
)

// Error represents a failure reported by the remote API or raised locally
// before a request is issued.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden      = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Validation error types, raised locally without any network call
var (
	ErrValidation     = New(http.StatusBadRequest, "Validation error", nil)
	ErrEmptyCart      = New(http.StatusBadRequest, "Cart is empty", nil)
	ErrNotLoggedIn    = New(http.StatusUnauthorized, "You must be logged in", nil)
	ErrIncompleteAddr = New(http.StatusBadRequest, "Incomplete shipping address", nil)
)

// FromResponse builds an Error from a non-2xx API response. The body is
// consumed so the transport can reuse the connection.
func FromResponse(resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := http.StatusText(resp.StatusCode)
	if len(body) > 0 {
		msg = string(body)
	}
	return New(resp.StatusCode, msg, nil)
}

// IsAuthFailure reports whether the status code is one of the two codes that
// force session teardown.
func IsAuthFailure(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// StatusCode extracts the HTTP status carried by err, or 0 when err is not an
// API error.
func StatusCode(err error) int {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return 0
}
