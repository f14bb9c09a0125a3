package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrTransport        = errors.New("server unreachable")
	ErrDecodingResponse = errors.New("cannot decode server response")
	ErrInvalidAddress   = errors.New("invalid server address")
)

// HTTPError is a non-2xx answer from the server.
type HTTPError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s (%d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.Body)
}

// Unwrap exposes the status sentinel.
func (e *HTTPError) Unwrap() error {
	return e.kind
}
