package testserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
)

// Credentials accepted by the fake backend.
const (
	AdminEmail    = "admin@servidz.test"
	AdminPassword = "correct horse"
	AdminToken    = "admin-token"
)

// Request is one call observed by the fake backend.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

// Backend is an in-memory stand-in for the marketplace REST API, served
// under /api.
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	users    []map[string]any
	taskers  []map[string]any
	bookings []map[string]any
	failures map[string]int
	holds    map[string]chan struct{}
	requests []Request
	avatar   string
}

// NewBackend starts a fake backend seeded with sample data.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		users:    SeedUsers(),
		taskers:  SeedTaskers(),
		bookings: SeedBookings(),
		failures: make(map[string]int),
		holds:    make(map[string]chan struct{}),
		avatar:   "https://cdn.servidz.test/avatars/admin.png",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", b.login)
	mux.HandleFunc("GET /api/admin/profile", b.authed(b.profile))
	mux.HandleFunc("POST /api/admin/avatar", b.authed(b.uploadAvatar))
	mux.HandleFunc("GET /api/users/all", b.authed(b.list(&b.users)))
	mux.HandleFunc("GET /api/taskers/all", b.authed(b.list(&b.taskers)))
	mux.HandleFunc("GET /api/bookings/all", b.authed(b.list(&b.bookings)))
	mux.HandleFunc("PATCH /api/users/{id}/status", b.authed(b.setStatus(&b.users)))
	mux.HandleFunc("PATCH /api/taskers/{id}/status", b.authed(b.setStatus(&b.taskers)))
	mux.HandleFunc("GET /api/dashboard/analytics", b.authed(b.static(analyticsFixture)))
	mux.HandleFunc("GET /api/analytics/taskers-distribution", b.authed(b.static(distributionFixture)))
	mux.HandleFunc("GET /api/analytics/monthly-earnings", b.authed(b.static(earningsFixture)))
	mux.HandleFunc("GET /api/recent-activities", b.authed(b.static(activitiesFixture)))

	b.Server = httptest.NewServer(b.observe(mux))
	t.Cleanup(b.Close)
	return b
}

// URL is the API base URL, ending in /api.
func (b *Backend) URL() string {
	return b.Server.URL + "/api"
}

// Close stops the server and releases any held requests.
func (b *Backend) Close() {
	b.mu.Lock()
	for key, ch := range b.holds {
		close(ch)
		delete(b.holds, key)
	}
	b.mu.Unlock()
	b.Server.Close()
}

// Fail makes every call to method+path answer with status until Restore.
func (b *Backend) Fail(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = status
}

// Restore removes all injected failures.
func (b *Backend) Restore() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.failures)
}

// Hold blocks calls to method+path until the returned release is called.
func (b *Backend) Hold(method, path string) (release func()) {
	ch := make(chan struct{})
	key := method + " " + path
	b.mu.Lock()
	b.holds[key] = ch
	b.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			if b.holds[key] == ch {
				delete(b.holds, key)
				close(ch)
			}
			b.mu.Unlock()
		})
	}
}

// Requests returns the calls observed so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.requests)
}

// SetUsers replaces the user collection.
func (b *Backend) SetUsers(users []map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users = users
}

// UserStatus returns the stored status of a user.
func (b *Backend) UserStatus(id string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return statusOf(b.users, id)
}

// TaskerStatus returns the stored status of a tasker.
func (b *Backend) TaskerStatus(id string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return statusOf(b.taskers, id)
}

// Avatar returns the current admin avatar URL.
func (b *Backend) Avatar() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.avatar
}

func (b *Backend) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		})
		status, failing := b.failures[key]
		hold := b.holds[key]
		b.mu.Unlock()

		if hold != nil {
			select {
			case <-hold:
			case <-r.Context().Done():
				return
			}
		}
		if failing {
			writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+AdminToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authorized, token failed"})
			return
		}
		next(w, r)
	}
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid body"})
		return
	}
	if creds.Email != AdminEmail || creds.Password != AdminPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": AdminToken,
		"admin": b.adminProfile(),
	})
}

func (b *Backend) profile(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, b.adminProfile())
}

func (b *Backend) adminProfile() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return map[string]any{
		"_id":    "admin-1",
		"email":  AdminEmail,
		"name":   "Console Admin",
		"avatar": b.avatar,
	}
}

func (b *Backend) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "avatar file is required"})
		return
	}
	defer file.Close()
	if _, err := io.Copy(io.Discard, file); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "unreadable upload"})
		return
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "avatar must be an image"})
		return
	}

	b.mu.Lock()
	b.avatar = "https://cdn.servidz.test/avatars/" + header.Filename
	url := b.avatar
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"avatar": url})
}

func (b *Backend) list(coll *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		out := make([]map[string]any, len(*coll))
		for i, rec := range *coll {
			out[i] = cloneRecord(rec)
		}
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, out)
	}
}

func (b *Backend) setStatus(coll *[]map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "status is required"})
			return
		}

		id := r.PathValue("id")
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, rec := range *coll {
			if recordID(rec) == id {
				rec["status"] = body.Status
				writeJSON(w, http.StatusOK, cloneRecord(rec))
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

func (b *Backend) static(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func recordID(rec map[string]any) string {
	if id, ok := rec["_id"].(string); ok && id != "" {
		return id
	}
	id, _ := rec["id"].(string)
	return id
}

func statusOf(coll []map[string]any, id string) string {
	for _, rec := range coll {
		if recordID(rec) == id {
			s, _ := rec["status"].(string)
			return s
		}
	}
	return ""
}

func cloneRecord(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
