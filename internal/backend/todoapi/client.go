// Package todoapi implements service.Service against the todo backend's
// REST API.
package todoapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tdo/internal/config"
	"tdo/internal/credstore"
	"tdo/internal/service"
)

// RequestTimeout is the fixed client-wide timeout for every request.
// Callers cannot override it; a caller that wants to abandon a pending
// call simply ignores its eventual result.
const RequestTimeout = 15 * time.Second

// Client implements service.Service. Every outbound request carries the
// stored bearer token when one is present.
type Client struct {
	base  string
	http  *http.Client
	store credstore.Store
}

var _ service.Service = (*Client)(nil)

// New creates a client for the configured backend address, wired to the
// given credential store.
func New(cfg *config.Config, store credstore.Store) *Client {
	return &Client{
		base: strings.TrimRight(cfg.BackendURL, "/"),
		http: &http.Client{
			Timeout:   RequestTimeout,
			Transport: &tokenTransport{store: store, next: http.DefaultTransport},
		},
		store: store,
	}
}

// tokenTransport reads the credential store before each request and
// attaches the bearer token to a clone of that request only. A failed
// read is treated exactly like "no token stored": the request still
// goes out, unauthenticated.
type tokenTransport struct {
	store credstore.Store
	next  http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.store.Get()
	if err != nil {
		log.Debugf("credential read failed, sending unauthenticated: %v", err)
		token = ""
	}
	if token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.next.RoundTrip(req)
}

// do issues a request and returns the response body for 2xx statuses.
// An empty contentType means the default application/json. Transport
// failures come back as *NetworkError, non-2xx as *ServerError; status
// codes are never interpreted here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body []byte) ([]byte, error) {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debugf("%s %s [%s]: %v", method, path, reqID, err)
		nerr := &NetworkError{Err: err}
		var ue *url.Error
		if errors.As(err, &ue) && ue.Timeout() {
			nerr.Timeout = true
		}
		if errors.Is(err, context.DeadlineExceeded) {
			nerr.Timeout = true
		}
		return nil, nerr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	log.Debugf("%s %s [%s]: %d", method, path, reqID, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newServerError(resp.StatusCode, data)
	}
	return data, nil
}
