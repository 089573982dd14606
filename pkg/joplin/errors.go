package joplin

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// APIError is an upstream rejection: Joplin answered the request with a
// non-2xx status. Message carries the upstream-provided error text
// verbatim so the caller sees what Joplin actually said.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("joplin api error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("joplin api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an upstream 404, which is how
// Joplin answers requests for unknown note and folder ids.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// UnreachableError is a transport-level failure: the request never got
// an HTTP response. Endpoint is the request path without query
// parameters, which keeps the API token out of error text and logs.
type UnreachableError struct {
	Endpoint string
	Err      error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("joplin unreachable (%s): %v", e.Endpoint, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// newUnreachableError strips the *url.Error wrapper the http client
// adds, because its message embeds the full request URL including the
// token query parameter.
func newUnreachableError(endpoint string, err error) *UnreachableError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	return &UnreachableError{Endpoint: endpoint, Err: err}
}

// DecodeError is a shape mismatch: the upstream answered 2xx but the
// body did not decode into the expected structure.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected response from joplin (%s): %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
