package todoapi_test

import (
	"context"
	"testing"

	"tdo/internal/testutil"
)

// Full pipeline: sign up, create a task, list it back.
func TestPipeline_SignupCreateList(t *testing.T) {
	backend := testutil.NewFakeBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend.URL())
	ctx := context.Background()

	if _, err := client.Signup(ctx, "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if _, err := client.CreateTask(ctx, "Buy milk", ""); err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	tasks, err := client.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Title != "Buy milk" || got.Description != "" || got.Completed {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.ID == "" {
		t.Error("task has no identifier")
	}
}

// A backend that rejects the query-parameter toggle still ends up with
// the task toggled, through the body fallback.
func TestPipeline_ToggleFallback(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.RejectQueryToggle = true
	defer backend.Close()

	client, _ := newTestClient(t, backend.URL())
	ctx := context.Background()

	backend.SeedUser("Ada", "ada@example.com", "pw")
	if _, err := client.Login(ctx, "ada@example.com", "pw"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	created, err := client.CreateTask(ctx, "Buy milk", "")
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	updated, err := client.ToggleCompleted(ctx, created.ID, true)
	if err != nil {
		t.Fatalf("ToggleCompleted returned error: %v", err)
	}
	if !updated.Completed {
		t.Error("expected task toggled to completed")
	}

	tasks, err := client.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Errorf("list does not reflect the toggle: %+v", tasks)
	}
}

// The client must cope with any of the known login response shapes.
func TestPipeline_BareTokenLogin(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.TokenShape = testutil.ShapeBare
	defer backend.Close()

	client, store := newTestClient(t, backend.URL())
	ctx := context.Background()

	backend.SeedUser("Ada", "ada@example.com", "pw")
	token, err := client.Login(ctx, "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("empty token from bare-body login")
	}
	if stored, _ := store.Get(); stored != token {
		t.Errorf("stored token = %q, want %q", stored, token)
	}

	// The stored token authenticates follow-up requests.
	if _, err := client.Tasks(ctx); err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}
}

func TestPipeline_DeleteRemovesTask(t *testing.T) {
	backend := testutil.NewFakeBackend()
	defer backend.Close()

	client, _ := newTestClient(t, backend.URL())
	ctx := context.Background()

	backend.SeedUser("Ada", "ada@example.com", "pw")
	if _, err := client.Login(ctx, "ada@example.com", "pw"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	first, err := client.CreateTask(ctx, "keep", "")
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	second, err := client.CreateTask(ctx, "drop", "")
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	if err := client.DeleteTask(ctx, second.ID); err != nil {
		t.Fatalf("DeleteTask returned error: %v", err)
	}

	tasks, err := client.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != first.ID {
		t.Errorf("expected only %q to remain, got %+v", first.ID, tasks)
	}
}
