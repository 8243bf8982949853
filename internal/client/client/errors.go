package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoSession    = errors.New("no session")
	ErrRejected     = errors.New("request rejected")
	ErrServer       = errors.New("server error")
)

// APIError is a non-2xx answer from the server. It unwraps to one of the
// sentinels above so callers can use errors.Is.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func newAPIError(status int, message string) *APIError {
	e := &APIError{Status: status, Message: message}
	switch {
	case status == http.StatusNotFound:
		e.kind = ErrNoSession
	case status >= http.StatusInternalServerError:
		e.kind = ErrServer
	default:
		e.kind = ErrRejected
	}
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.kind }
