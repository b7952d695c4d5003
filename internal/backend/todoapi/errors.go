package todoapi

import (
	"encoding/json"
	"fmt"
)

// NetworkError is a transport-level failure: unreachable host or timeout.
type NetworkError struct {
	Err     error
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return "request timed out"
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Detail carries the backend's
// {"detail": ...} message when the body had one.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// AuthError is a credential-level failure, such as a login response
// without a usable token.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// newServerError extracts the detail envelope from an error response
// body. Validation errors may arrive as structured detail; those are
// passed through as their raw JSON text.
func newServerError(status int, body []byte) *ServerError {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	detail := ""
	if err := json.Unmarshal(body, &env); err == nil && len(env.Detail) > 0 {
		var s string
		if json.Unmarshal(env.Detail, &s) == nil {
			detail = s
		} else {
			detail = string(env.Detail)
		}
	}
	return &ServerError{Status: status, Detail: detail}
}
