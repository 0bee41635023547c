package intrinio

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidArgument is matched by every client-side argument error.
var ErrInvalidArgument = errors.New("intrinio: invalid argument")

// InvalidArgumentError reports a missing required parameter or a malformed
// value. It is returned before any request is issued.
type InvalidArgumentError struct {
	Operation string
	Param     string
	Reason    string
}

func (e *InvalidArgumentError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("intrinio: invalid argument %q: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("intrinio: %s: invalid argument %q: %s", e.Operation, e.Param, e.Reason)
}

// StatusCode mirrors the 400 a server would have answered.
func (e *InvalidArgumentError) StatusCode() int { return http.StatusBadRequest }

// Is makes errors.Is(err, ErrInvalidArgument) match.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// APIError is returned by DefaultExceptionFactory for non-success responses.
type APIError struct {
	StatusCode int
	Operation  string
	Body       []byte
	Header     http.Header
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("intrinio: error calling %s: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("intrinio: error calling %s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an APIError carrying a 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ExceptionFactory inspects a completed response and may turn it into an
// error. Returning nil lets the body be decoded and returned as usual. The
// response body has already been read; use body instead.
type ExceptionFactory func(operation string, resp *http.Response, body []byte) error

// DefaultExceptionFactory fails every response with a status of 400 or above,
// and responses that carry no status at all.
func DefaultExceptionFactory(operation string, resp *http.Response, body []byte) error {
	status := resp.StatusCode
	if status >= http.StatusBadRequest || status == 0 {
		return &APIError{
			StatusCode: status,
			Operation:  operation,
			Body:       body,
			Header:     resp.Header,
		}
	}
	return nil
}
