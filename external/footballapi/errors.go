package footballapi

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrTransport = crerr.New("football api transport failure")
	ErrStatus    = crerr.New("football api returned an error status")
	ErrDecode    = crerr.New("football api payload is invalid")
)

// StatusError is a non-2xx answer. Its message is the raw response body.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if body := strings.TrimSpace(e.Body); body != "" {
		return body
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	return ErrStatus
}

// NotFound reports a 404 answer.
func (e *StatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// DecodeError is malformed JSON or a payload that breaks the response schema.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

func isBreakerFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, ErrTransport) {
		return true
	}
	var statusErr *StatusError
	if stderrors.As(err, &statusErr) {
		return isServerStatus(statusErr.StatusCode)
	}
	return false
}

func isServerStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func isNotFound(err error) bool {
	var statusErr *StatusError
	return stderrors.As(err, &statusErr) && statusErr.NotFound()
}
