package commands

import (
	"errors"
	"net/http"

	"tdo/internal/backend/todoapi"
	"tdo/internal/exitcode"
)

// classify maps a backend error to an exit code. Credential-level
// failures and rejected-credential statuses count as auth errors;
// everything else is a backend error.
func classify(err error) int {
	var authErr *todoapi.AuthError
	if errors.As(err, &authErr) {
		return exitcode.AuthError
	}
	var srvErr *todoapi.ServerError
	if errors.As(err, &srvErr) {
		if srvErr.Status == http.StatusUnauthorized || srvErr.Status == http.StatusForbidden {
			return exitcode.AuthError
		}
	}
	return exitcode.BackendError
}
