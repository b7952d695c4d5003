package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// Token response shapes a FakeBackend can answer a login with.
const (
	ShapeAccessToken = "access_token"
	ShapeToken       = "token"
	ShapeBare        = "bare"
)

// FakeBackend is an in-memory HTTP implementation of the todo backend's
// wire contract, for exercising the full client pipeline in tests.
type FakeBackend struct {
	mu     sync.Mutex
	srv    *httptest.Server
	users  map[string]backendUser // email -> user
	tokens map[string]string      // token -> email
	todos  []backendTodo          // newest first
	nextID int

	// TokenShape selects the login response shape; default ShapeAccessToken.
	TokenShape string

	// RejectQueryToggle answers the query-parameter toggle with 404,
	// forcing clients onto the JSON-body fallback.
	RejectQueryToggle bool
}

type backendUser struct {
	name     string
	password string
}

type backendTodo struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewFakeBackend starts the fake server. Callers must Close it.
func NewFakeBackend() *FakeBackend {
	b := &FakeBackend{
		users:      make(map[string]backendUser),
		tokens:     make(map[string]string),
		TokenShape: ShapeAccessToken,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signup", b.handleSignup)
	mux.HandleFunc("POST /auth/login", b.handleLogin)
	mux.HandleFunc("GET /todos", b.handleList)
	mux.HandleFunc("POST /todos", b.handleCreate)
	mux.HandleFunc("PUT /todos/{id}", b.handleUpdate)
	mux.HandleFunc("DELETE /todos/{id}", b.handleDelete)
	mux.HandleFunc("GET /users/me", b.handleMe)
	b.srv = httptest.NewServer(mux)
	return b
}

// URL returns the server's base address.
func (b *FakeBackend) URL() string { return b.srv.URL }

// Close shuts the server down.
func (b *FakeBackend) Close() { b.srv.Close() }

// SeedUser registers an account without going through signup.
func (b *FakeBackend) SeedUser(name, email, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[email] = backendUser{name: name, password: password}
}

func detail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}

// authed resolves the bearer token to an account email.
func (b *FakeBackend) authed(w http.ResponseWriter, r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		b.mu.Lock()
		email, ok := b.tokens[auth[len(prefix):]]
		b.mu.Unlock()
		if ok {
			return email, true
		}
	}
	detail(w, http.StatusUnauthorized, "Not authenticated")
	return "", false
}

func (b *FakeBackend) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		detail(w, http.StatusBadRequest, "invalid body")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[req.Email]; exists {
		detail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	b.users[req.Email] = backendUser{name: req.Name, password: req.Password}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": req.Name, "email": req.Email})
}

func (b *FakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		detail(w, http.StatusBadRequest, "invalid form")
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	b.mu.Lock()
	defer b.mu.Unlock()
	user, ok := b.users[email]
	if !ok || user.password != password {
		detail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token := fmt.Sprintf("tok-%d", len(b.tokens)+1)
	b.tokens[token] = email

	switch b.TokenShape {
	case ShapeToken:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	case ShapeBare:
		fmt.Fprint(w, token)
	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access_token": token, "token_type": "bearer"})
	}
}

func (b *FakeBackend) handleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := b.authed(w, r); !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	todos := b.todos
	if todos == nil {
		todos = []backendTodo{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(todos)
}

func (b *FakeBackend) handleCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := b.authed(w, r); !ok {
		return
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		detail(w, http.StatusBadRequest, "invalid body")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	todo := backendTodo{
		ID:          fmt.Sprintf("t%d", b.nextID),
		Title:       req.Title,
		Description: req.Description,
	}
	b.todos = append([]backendTodo{todo}, b.todos...)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(todo)
}

func (b *FakeBackend) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if _, ok := b.authed(w, r); !ok {
		return
	}
	id := r.PathValue("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	idx := -1
	for i, t := range b.todos {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		detail(w, http.StatusNotFound, "Todo not found")
		return
	}

	if qv := r.URL.Query().Get("completed"); qv != "" {
		if b.RejectQueryToggle {
			detail(w, http.StatusNotFound, "Todo not found")
			return
		}
		completed, err := strconv.ParseBool(qv)
		if err != nil {
			detail(w, http.StatusBadRequest, "invalid completed value")
			return
		}
		b.todos[idx].Completed = completed
	} else {
		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			detail(w, http.StatusBadRequest, "invalid body")
			return
		}
		if v, ok := fields["title"].(string); ok {
			b.todos[idx].Title = v
		}
		if v, ok := fields["description"].(string); ok {
			b.todos[idx].Description = v
		}
		if v, ok := fields["completed"].(bool); ok {
			b.todos[idx].Completed = v
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b.todos[idx])
}

func (b *FakeBackend) handleDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := b.authed(w, r); !ok {
		return
	}
	id := r.PathValue("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, t := range b.todos {
		if t.ID == id {
			b.todos = append(b.todos[:i], b.todos[i+1:]...)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Todo deleted successfully"})
			return
		}
	}
	detail(w, http.StatusNotFound, "Todo not found")
}

func (b *FakeBackend) handleMe(w http.ResponseWriter, r *http.Request) {
	email, ok := b.authed(w, r)
	if !ok {
		return
	}
	b.mu.Lock()
	user := b.users[email]
	b.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": user.name, "email": email})
}
