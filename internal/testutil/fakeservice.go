// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tdo/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for
// testing commands. Tasks are held newest first, matching the backend.
type FakeService struct {
	mu      sync.RWMutex
	tasks   []service.Task
	profile service.Profile
	nextID  int

	// TasksCalls counts Tasks invocations, for refetch assertions.
	TasksCalls int

	// Error injection for testing
	LoginErr      error
	SignupErr     error
	TasksErr      error
	CreateTaskErr error
	UpdateTaskErr error
	ToggleErr     error
	DeleteTaskErr error
	ProfileErr    error
}

// NewFakeService creates a FakeService with a default profile.
func NewFakeService() *FakeService {
	return &FakeService{
		profile: service.Profile{ID: 1, Name: "Test User", Email: "user@example.com"},
	}
}

// AddTask appends a task in the order given.
func (f *FakeService) AddTask(id, title, description string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
}

// SetProfile replaces the profile returned by Profile.
func (f *FakeService) SetProfile(p service.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = p
}

// TaskByID returns a stored task, for assertions.
func (f *FakeService) TaskByID(id string) (service.Task, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (string, error) {
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return "fake-token", nil
}

// Signup implements service.Service. Like the real gateway, the login
// stage runs after signup and its failure wins.
func (f *FakeService) Signup(ctx context.Context, name, email, password string) (string, error) {
	if f.SignupErr != nil {
		return "", f.SignupErr
	}
	return f.Login(ctx, email, password)
}

// Tasks implements service.Service.
func (f *FakeService) Tasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	f.TasksCalls++
	f.mu.Unlock()

	if f.TasksErr != nil {
		return nil, f.TasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements service.Service: new tasks go to the front.
func (f *FakeService) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	task := service.Task{
		ID:          fmt.Sprintf("task-%d", f.nextID),
		Title:       title,
		Description: description,
	}
	f.tasks = append([]service.Task{task}, f.tasks...)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, upd service.TaskUpdate) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.Completed != nil {
			t.Completed = *upd.Completed
		}
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, ErrNotFound
}

// ToggleCompleted implements service.Service.
func (f *FakeService) ToggleCompleted(ctx context.Context, id string, completed bool) (service.Task, error) {
	if f.ToggleErr != nil {
		return service.Task{}, f.ToggleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Completed = completed
			return f.tasks[i], nil
		}
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Profile implements service.Service.
func (f *FakeService) Profile(ctx context.Context) (service.Profile, error) {
	if f.ProfileErr != nil {
		return service.Profile{}, f.ProfileErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.profile, nil
}
