package todoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Login implements service.Service. The login endpoint is a form post
// with fixed field names username and password: a protocol contract
// with the backend, even though the identifier is an email address.
// The token is persisted to the store before it is returned.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	data, err := c.do(ctx, http.MethodPost, "/auth/login", nil,
		"application/x-www-form-urlencoded", []byte(form.Encode()))
	if err != nil {
		return "", err
	}

	token, err := decodeToken(data)
	if err != nil {
		return "", err
	}
	if err := c.store.Set(token); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}
	return token, nil
}

// Signup implements service.Service. Any token the signup response
// might contain is ignored; the session token always comes from the
// follow-up login, whose failure propagates as-is.
func (c *Client) Signup(ctx context.Context, name, email, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
	if err != nil {
		return "", err
	}
	if _, err := c.do(ctx, http.MethodPost, "/auth/signup", nil, "", body); err != nil {
		return "", err
	}
	return c.Login(ctx, email, password)
}
