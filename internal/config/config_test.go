package config

import (
	"path/filepath"
	"testing"
)

func TestResolveBackendURL_EnvOverride(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://api.example.com:9000")

	if got := ResolveBackendURL(); got != "http://api.example.com:9000" {
		t.Errorf("ResolveBackendURL = %q, want the BACKEND_URL value", got)
	}
}

func TestResolveBackendURL_Default(t *testing.T) {
	t.Setenv("BACKEND_URL", "")

	if got := ResolveBackendURL(); got != "http://localhost:8000" {
		t.Errorf("ResolveBackendURL = %q, want http://localhost:8000", got)
	}
}

func TestNew_ExplicitDir(t *testing.T) {
	dir := t.TempDir()
	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, dir)
	}
}

func TestNew_DefaultDirFromXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	cfg, err := New("")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	want := filepath.Join(base, AppName)
	if cfg.Dir != want {
		t.Errorf("Dir = %q, want %q", cfg.Dir, want)
	}
}

func TestTokenPath(t *testing.T) {
	cfg := &Config{Dir: "/tmp/tdo-test"}

	want := filepath.Join("/tmp/tdo-test", TokenFile)
	if got := cfg.TokenPath(); got != want {
		t.Errorf("TokenPath = %q, want %q", got, want)
	}
}
