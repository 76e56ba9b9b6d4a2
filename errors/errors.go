// Package errors error module.
package errors

import (
	"encoding/json"
	"fmt"
)

var (
	// ErrNotFound error not found.
	ErrNotFound = fmt.Errorf("notfound")
	// ErrMalformed error malformed request.
	ErrMalformed = fmt.Errorf("malformed")
	// ErrInternalServerError Internal Server Error.
	ErrInternalServerError = fmt.Errorf("internal")
	// ErrUpstreamUnavailable upstream chemistry api is not reachable yet.
	ErrUpstreamUnavailable = fmt.Errorf("upstreamunavailable")
	// ErrNotImplemented ...
	ErrNotImplemented = fmt.Errorf("notimplemented")
)

// RequestError carries a reason map serialized to the client.
type RequestError map[string]string

// NewRequestError ...
func NewRequestError(reason string) RequestError {
	return RequestError{"reason": reason}
}

// Error ...
func (re RequestError) Error() string {
	return fmt.Sprintf("%+v", map[string]string(re))
}

// MarshalJSON ...
func (re RequestError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(re))
}
