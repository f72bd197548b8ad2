package sealapi

import (
	"errors"
	"fmt"
)

// ErrConnection marks failures to reach the backend at all.
var ErrConnection = errors.New("seal backend connection error")

// StatusError reports a response the client could not use.
type StatusError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("seal backend %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("seal backend %s: status %d: %s", e.Op, e.StatusCode, e.Detail)
}

// IsConnectionError reports whether err means the backend was unreachable.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}
