package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/thenoetrevino/devyntra/internal/models"
)

// RecordedRequest is one request the fake backend received
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	Body          []byte
}

type backendUser struct {
	id       string
	email    string
	password string
	fullName string
}

// Backend is an in-process stand-in for the Devyntra API. It keeps accounts
// and projects in memory and records every request it sees.
type Backend struct {
	server *httptest.Server

	mu       sync.Mutex
	users    map[string]backendUser
	tokens   map[string]string
	projects map[string][]models.Project
	requests []RecordedRequest

	listFailure   int
	createFailure int
	createDetail  string
	confirmEmail  bool
	listGate      chan struct{}
}

// NewBackend starts a fake backend that is shut down when the test ends
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		users:    make(map[string]backendUser),
		tokens:   make(map[string]string),
		projects: make(map[string][]models.Project),
	}

	r := mux.NewRouter()
	r.Use(b.record)
	r.HandleFunc("/login", b.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/signup", b.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/projects", b.handleListProjects).Methods(http.MethodGet)
	r.HandleFunc("/projects", b.handleCreateProject).Methods(http.MethodPost)

	b.server = httptest.NewServer(r)
	t.Cleanup(b.server.Close)
	return b
}

// URL is the base URL of the fake backend
func (b *Backend) URL() string {
	return b.server.URL
}

// AddUser registers an account that can log in
func (b *Backend) AddUser(email, password, fullName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[email] = backendUser{id: uuid.NewString(), email: email, password: password, fullName: fullName}
}

// IssueSession registers an account if needed and returns a session valid
// against this backend, as if the user had logged in
func (b *Backend) IssueSession(email, fullName string) *models.Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	u, ok := b.users[email]
	if !ok {
		u = backendUser{id: uuid.NewString(), email: email, password: "password", fullName: fullName}
		b.users[email] = u
	}
	token := b.issueTokenLocked(email)
	return &models.Session{
		AccessToken: token,
		User:        models.User{ID: u.id, Email: u.email, FullName: u.fullName},
	}
}

// SeedProject stores a project for the owner of token
func (b *Backend) SeedProject(token string, p models.Project) {
	b.mu.Lock()
	defer b.mu.Unlock()
	email := b.tokens[token]
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	b.projects[email] = append(b.projects[email], p)
}

// SetProjectStatus changes the status of a stored project, like the analysis
// pipeline would
func (b *Backend) SetProjectStatus(id, status string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for email, list := range b.projects {
		for i := range list {
			if list[i].ID == id {
				b.projects[email][i].Status = status
			}
		}
	}
}

// FailProjectList makes GET /projects answer with status; 0 restores normal behavior
func (b *Backend) FailProjectList(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listFailure = status
}

// FailProjectCreate makes POST /projects answer with status and detail.
// An empty detail sends a body without one.
func (b *Backend) FailProjectCreate(status int, detail string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.createFailure = status
	b.createDetail = detail
}

// RequireEmailConfirmation makes signup return a message instead of a session
func (b *Backend) RequireEmailConfirmation(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.confirmEmail = on
}

// HoldProjectList blocks GET /projects until the returned func is called
func (b *Backend) HoldProjectList() (release func()) {
	gate := make(chan struct{})
	b.mu.Lock()
	b.listGate = gate
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			b.listGate = nil
			b.mu.Unlock()
			close(gate)
		})
	}
}

// Requests returns a copy of every recorded request
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// RequestsTo returns the recorded requests matching method and path, oldest first
func (b *Backend) RequestsTo(method, path string) []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []RecordedRequest
	for _, r := range b.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// CountRequests counts recorded requests matching method and path
func (b *Backend) CountRequests(method, path string) int {
	return len(b.RequestsTo(method, path))
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          body,
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	u, ok := b.users[req.Email]
	if !ok || u.password != req.Password {
		b.mu.Unlock()
		writeDetail(w, http.StatusUnauthorized, "Invalid login credentials")
		return
	}
	token := b.issueTokenLocked(u.email)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, authPayload(u, token))
}

func (b *Backend) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	if _, exists := b.users[req.Email]; exists {
		b.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, "User already registered")
		return
	}
	u := backendUser{id: uuid.NewString(), email: req.Email, password: req.Password, fullName: req.FullName}
	b.users[req.Email] = u
	if b.confirmEmail {
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Signup successful. Please check your email to confirm your account.",
		})
		return
	}
	token := b.issueTokenLocked(u.email)
	b.mu.Unlock()

	payload := authPayload(u, token)
	payload["workspace"] = map[string]string{"id": uuid.NewString(), "name": u.fullName + "'s Workspace"}
	writeJSON(w, http.StatusOK, payload)
}

func (b *Backend) handleListProjects(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	gate := b.listGate
	b.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	b.mu.Lock()
	email, ok := b.authorizeLocked(r)
	if !ok {
		b.mu.Unlock()
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if b.listFailure != 0 {
		status := b.listFailure
		b.mu.Unlock()
		writeDetail(w, status, "list unavailable")
		return
	}
	list := append([]models.Project{}, b.projects[email]...)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, list)
}

func (b *Backend) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		RepoURL string `json:"repo_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	email, ok := b.authorizeLocked(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if b.createFailure != 0 {
		if b.createDetail == "" {
			writeJSON(w, b.createFailure, map[string]string{})
			return
		}
		writeDetail(w, b.createFailure, b.createDetail)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.RepoURL) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{
				{"loc": []string{"body", "repo_url"}, "msg": "field required", "type": "value_error.missing"},
			},
		})
		return
	}

	p := models.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		RepoURL:     req.RepoURL,
		Status:      models.StatusAnalysisPending,
		WorkspaceID: uuid.NewString(),
	}
	b.projects[email] = append(b.projects[email], p)
	writeJSON(w, http.StatusOK, p)
}

func (b *Backend) issueTokenLocked(email string) string {
	token := "tok-" + uuid.NewString()
	b.tokens[token] = email
	return token
}

func (b *Backend) authorizeLocked(r *http.Request) (string, bool) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return "", false
	}
	email, ok := b.tokens[token]
	return email, ok
}

// authPayload mirrors the auth provider's response shape
func authPayload(u backendUser, token string) map[string]any {
	user := map[string]any{
		"id":            u.id,
		"email":         u.email,
		"user_metadata": map[string]string{"full_name": u.fullName},
	}
	return map[string]any{
		"user": user,
		"session": map[string]any{
			"access_token": token,
			"token_type":   "bearer",
			"user":         user,
		},
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
