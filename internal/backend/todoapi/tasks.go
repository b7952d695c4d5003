package todoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"tdo/internal/service"
)

// Tasks implements service.Service.
func (c *Client) Tasks(ctx context.Context) ([]service.Task, error) {
	data, err := c.do(ctx, http.MethodGet, "/todos", nil, "", nil)
	if err != nil {
		return nil, err
	}
	return decodeTasks(data)
}

// CreateTask implements service.Service. Title validation is the
// caller's responsibility.
func (c *Client) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	body, err := json.Marshal(map[string]string{
		"title":       title,
		"description": description,
	})
	if err != nil {
		return service.Task{}, err
	}
	data, err := c.do(ctx, http.MethodPost, "/todos", nil, "", body)
	if err != nil {
		return service.Task{}, err
	}
	return decodeTask(data)
}

// UpdateTask implements service.Service; only set fields go on the wire.
func (c *Client) UpdateTask(ctx context.Context, id string, upd service.TaskUpdate) (service.Task, error) {
	fields := make(map[string]any)
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Completed != nil {
		fields["completed"] = *upd.Completed
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return service.Task{}, err
	}
	data, err := c.do(ctx, http.MethodPut, "/todos/"+url.PathEscape(id), nil, "", body)
	if err != nil {
		return service.Task{}, err
	}
	return decodeTask(data)
}

// ToggleCompleted implements service.Service with the two-phase
// strategy: the backend prefers the flag as a query parameter on a
// bodyless update, so that form goes first; any failure falls back to
// one attempt with the flag in a JSON body. The fallback's failure is
// returned unchanged, and the caller re-fetches the list to
// resynchronize its view.
func (c *Client) ToggleCompleted(ctx context.Context, id string, completed bool) (service.Task, error) {
	path := "/todos/" + url.PathEscape(id)

	query := url.Values{}
	query.Set("completed", strconv.FormatBool(completed))
	data, err := c.do(ctx, http.MethodPut, path, query, "", nil)
	if err == nil {
		return decodeTask(data)
	}

	log.Debugf("toggle via query param failed, retrying with body: %v", err)
	body, merr := json.Marshal(map[string]bool{"completed": completed})
	if merr != nil {
		return service.Task{}, merr
	}
	data, err = c.do(ctx, http.MethodPut, path, nil, "", body)
	if err != nil {
		return service.Task{}, err
	}
	return decodeTask(data)
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id), nil, "", nil)
	return err
}
