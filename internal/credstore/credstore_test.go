package credstore

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFile_SetGetRoundTrip(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "token"))

	if err := store.Set("secret"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := store.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != "secret" {
		t.Errorf("Get = %q, want secret", got)
	}
}

func TestFile_GetAbsent(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "token"))

	got, err := store.Get()
	if err != nil {
		t.Fatalf("Get on absent token returned error: %v", err)
	}
	if got != "" {
		t.Errorf("Get = %q, want empty", got)
	}
}

func TestFile_SetCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	store := NewFile(path)

	if err := store.Set("secret"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("token file not created: %v", err)
	}
}

func TestFile_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "token")
	store := NewFile(path)

	if err := store.Set("secret"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}
}

func TestFile_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFile(path)

	if err := store.Set("secret"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Delete(); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("token file still present after Delete")
	}

	got, err := store.Get()
	if err != nil || got != "" {
		t.Errorf("Get after Delete = (%q, %v), want empty", got, err)
	}
}

func TestFile_DeleteAbsent(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "token"))

	if err := store.Delete(); err != nil {
		t.Errorf("Delete on absent token returned error: %v", err)
	}
}

func TestFile_GetTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("secret\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewFile(path)
	got, err := store.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != "secret" {
		t.Errorf("Get = %q, want trimmed token", got)
	}
}
