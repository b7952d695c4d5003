package todoapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"tdo/internal/backend/todoapi"
	"tdo/internal/config"
	"tdo/internal/credstore"
)

// newTestClient builds a client against url with a fresh file store.
func newTestClient(t *testing.T, url string) (*todoapi.Client, *credstore.File) {
	t.Helper()
	store := credstore.NewFile(filepath.Join(t.TempDir(), "token"))
	cfg := &config.Config{Dir: t.TempDir(), BackendURL: url}
	return todoapi.New(cfg, store), store
}

func TestAuthorizationHeader_TokenStored(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.Set("secret-token"); err != nil {
		t.Fatalf("store.Set: %v", err)
	}

	if _, err := client.Tasks(context.Background()); err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret-token")
	}
}

func TestAuthorizationHeader_NoToken(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	if _, err := client.Tasks(context.Background()); err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}
	if hadHeader {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

// failStore simulates unavailable credential storage.
type failStore struct{}

func (failStore) Get() (string, error) { return "", errors.New("storage unavailable") }
func (failStore) Set(string) error     { return errors.New("storage unavailable") }
func (failStore) Delete() error        { return errors.New("storage unavailable") }

// A failed credential read must not block the request: it goes out
// unauthenticated.
func TestAuthorizationHeader_StoreReadFailure(t *testing.T) {
	requests := 0
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, hadHeader = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := &config.Config{Dir: t.TempDir(), BackendURL: srv.URL}
	client := todoapi.New(cfg, failStore{})

	if _, err := client.Tasks(context.Background()); err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected 1 request, got %d", requests)
	}
	if hadHeader {
		t.Error("expected no Authorization header on fail-open request")
	}
}

func TestDefaultHeaders(t *testing.T) {
	var contentType, requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		requestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	if _, err := client.Tasks(context.Background()); err != nil {
		t.Fatalf("Tasks returned error: %v", err)
	}

	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
	if requestID == "" {
		t.Error("expected a X-Request-Id header")
	}
}

func TestServerError_DetailPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Email already registered"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	_, err := client.Tasks(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var srvErr *todoapi.ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected *ServerError, got %T: %v", err, err)
	}
	if srvErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", srvErr.Status, http.StatusBadRequest)
	}
	if srvErr.Error() != "Email already registered" {
		t.Errorf("Error() = %q, want the server detail", srvErr.Error())
	}
}

func TestServerError_NoDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("oops"))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	_, err := client.Tasks(context.Background())

	var srvErr *todoapi.ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("expected *ServerError, got %T: %v", err, err)
	}
	if srvErr.Error() != "server returned status 500" {
		t.Errorf("Error() = %q, want generic status message", srvErr.Error())
	}
}

func TestNetworkError_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client, _ := newTestClient(t, srv.URL)
	_, err := client.Tasks(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var netErr *todoapi.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
}
