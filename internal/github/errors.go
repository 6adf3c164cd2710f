package github

import (
	"fmt"

	"github.com/google/go-github/v73/github"
)

// RequestError is returned for any GitHub call that fails, whether with a
// non-success HTTP status or a transport error. StatusCode is zero when no
// response was received.
type RequestError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("github: %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newRequestError(op string, resp *github.Response, err error) *RequestError {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	return &RequestError{Op: op, StatusCode: status, Err: err}
}
