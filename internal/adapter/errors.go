package adapter

import (
	"errors"
	"fmt"
)

// ErrRemoteUnreachable marks failures where no usable HTTP response arrived:
// connection refused, DNS failure, timeout, cancelled context. The underlying
// cause is wrapped alongside it.
var ErrRemoteUnreachable = errors.New("remote service unreachable")

// RejectedError is returned when the remote service answered with a non-2xx
// status. It carries the status code and the raw response body so callers can
// relay or log the remote's own explanation.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote rejected request: status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote rejected request: status %d: %s", e.StatusCode, e.Body)
}
