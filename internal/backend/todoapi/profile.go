package todoapi

import (
	"context"
	"net/http"

	"tdo/internal/service"
)

// Profile implements service.Service. Failures are reported to the
// caller; there is no automatic retry.
func (c *Client) Profile(ctx context.Context) (service.Profile, error) {
	data, err := c.do(ctx, http.MethodGet, "/users/me", nil, "", nil)
	if err != nil {
		return service.Profile{}, err
	}
	return decodeProfile(data)
}
