package todoapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"tdo/internal/service"
)

// rawTask mirrors a backend task record before normalization. The
// backend may key the record by a database-generated string `_id` or a
// numeric `id`, and may omit description and completed entirely.
type rawTask struct {
	MongoID     json.RawMessage `json:"_id"`
	NumericID   json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Completed   json.RawMessage `json:"completed"`
}

// normalizeTask maps a raw record to the canonical Task shape. The
// result always has all four fields populated, and normalizing an
// already-normalized record yields the same record.
func normalizeTask(raw rawTask) service.Task {
	t := service.Task{
		ID:        normalizeID(raw.MongoID, raw.NumericID),
		Title:     raw.Title,
		Completed: coerceBool(raw.Completed),
	}
	if raw.Description != nil {
		t.Description = *raw.Description
	}
	return t
}

// normalizeID picks the first usable identifier key, `_id` before `id`,
// and renders it as a string (numeric keys in decimal).
func normalizeID(keys ...json.RawMessage) string {
	for _, raw := range keys {
		trimmed := strings.TrimSpace(string(raw))
		if trimmed == "" || trimmed == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s != "" {
				return s
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

// coerceBool applies truthiness rules to whatever the backend sent for
// completed: absent, null, false, 0 and "" are false, anything else true.
func coerceBool(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

func decodeTask(data []byte) (service.Task, error) {
	var raw rawTask
	if err := json.Unmarshal(data, &raw); err != nil {
		return service.Task{}, fmt.Errorf("malformed task record: %w", err)
	}
	return normalizeTask(raw), nil
}

func decodeTasks(data []byte) ([]service.Task, error) {
	var raws []rawTask
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("malformed task list: %w", err)
	}
	tasks := make([]service.Task, len(raws))
	for i, raw := range raws {
		tasks[i] = normalizeTask(raw)
	}
	return tasks, nil
}

// decodeToken extracts a bearer token from a login response. The
// backend answers with {"access_token": ...}, {"token": ...}, or the
// token as the bare response body; the shapes are tried in that order.
func decodeToken(data []byte) (string, error) {
	var shaped struct {
		AccessToken string `json:"access_token"`
		Token       string `json:"token"`
	}
	if err := json.Unmarshal(data, &shaped); err == nil {
		if shaped.AccessToken != "" {
			return shaped.AccessToken, nil
		}
		if shaped.Token != "" {
			return shaped.Token, nil
		}
	}

	var bare string
	if err := json.Unmarshal(data, &bare); err == nil && bare != "" {
		return bare, nil
	}

	// Plain-text body. JSON objects and arrays without a token field
	// don't count as tokens.
	raw := strings.TrimSpace(string(data))
	if raw != "" && !strings.HasPrefix(raw, "{") && !strings.HasPrefix(raw, "[") && raw != `""` {
		return raw, nil
	}
	return "", &AuthError{Msg: "No token in response"}
}

// rawProfile mirrors the /users/me response; the shape is trusted
// beyond the optional id.
type rawProfile struct {
	ID    *int64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func decodeProfile(data []byte) (service.Profile, error) {
	var raw rawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return service.Profile{}, fmt.Errorf("malformed profile: %w", err)
	}
	p := service.Profile{Name: raw.Name, Email: raw.Email}
	if raw.ID != nil {
		p.ID = *raw.ID
	}
	return p, nil
}
