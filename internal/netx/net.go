// Package netx holds the net/http plumbing shared by the backend client and
// the exercise catalog.
package netx

import (
	"fmt"
	"io"
	"net/http"
)

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 4 << 20

// TransportError wraps a failure to send a request or to read its response.
// Status codes never produce one.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// Send performs req and returns the status and at most MaxBodySize bytes of
// the body, which is always closed.
func Send(c *http.Client, req *http.Request) (int, []byte, error) {
	if c == nil {
		c = http.DefaultClient
	}
	resp, err := c.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	return resp.StatusCode, body, nil
}

// IsSuccess reports whether status is 2xx.
func IsSuccess(status int) bool {
	return status >= 200 && status <= 299
}
