// Package service defines the backend-agnostic interface for todo operations.
package service

import "context"

// Service defines the operations commands may perform against the
// backend. Commands never build HTTP requests directly.
type Service interface {
	// Login exchanges credentials for a bearer token and persists it.
	Login(ctx context.Context, email, password string) (string, error)

	// Signup creates an account, then performs the same login flow to
	// obtain and persist a session token. A login failure after a
	// successful signup is returned as the login failure.
	Signup(ctx context.Context, name, email, password string) (string, error)

	// Tasks returns all tasks, newest first, normalized.
	Tasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task. Callers must pass a title that is
	// non-empty after trimming; the gateway does not re-validate.
	CreateTask(ctx context.Context, title, description string) (Task, error)

	// UpdateTask applies a partial update.
	UpdateTask(ctx context.Context, id string, upd TaskUpdate) (Task, error)

	// ToggleCompleted sets the completed flag, preferring the backend's
	// query-parameter encoding and falling back to a JSON body. When
	// both attempts fail the caller re-fetches the list to resync.
	ToggleCompleted(ctx context.Context, id string, completed bool) (Task, error)

	// DeleteTask deletes a task. Callers drop the record from local
	// views only after success.
	DeleteTask(ctx context.Context, id string) error

	// Profile fetches the current user's profile.
	Profile(ctx context.Context) (Profile, error)
}
