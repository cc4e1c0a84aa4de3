package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error defines a public type used by authkit APIs.
//
// Error is a non-2xx response from the authentication service. Message is
// the server's own message field when the body carried one, otherwise the
// standard status text.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is a server response with the given status
// code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsUnauthorized reports whether err is a 401 response — a definitive
// credential rejection, as opposed to a transient failure.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNetwork reports whether err came from a request that never produced a
// server response. Such failures must never tear a session down.
func IsNetwork(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	return !errors.As(err, &apiErr)
}
