// internal/testutil/fakebms.go
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeBMS is a scripted stand-in for the bench management backend. Routes
// are registered per method+path; unmatched requests 404 and are recorded
// so tests can assert nothing unexpected was called.
type FakeBMS struct {
	t   *testing.T
	srv *httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []string
}

// NewFakeBMS starts an empty fake. Register routes with On.
func NewFakeBMS(t *testing.T) *FakeBMS {
	t.Helper()
	f := &FakeBMS{t: t, routes: map[string]http.HandlerFunc{}}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

// StartFakeBMS serves every request with one handler. For tests that only
// exercise a single endpoint.
func StartFakeBMS(t *testing.T, fn http.HandlerFunc) *FakeBMS {
	t.Helper()
	f := &FakeBMS{t: t, routes: map[string]http.HandlerFunc{}}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		fn(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the fake's base URL (the client appends /bms itself).
func (f *FakeBMS) URL() string { return f.srv.URL }

// On registers a handler for method + path (path as the client sends it,
// e.g. "GET /bms/details").
func (f *FakeBMS) On(method, path string, fn http.HandlerFunc) *FakeBMS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = fn
	return f
}

// OnJSON registers a handler that replies 200 with the JSON encoding of v.
func (f *FakeBMS) OnJSON(method, path string, v any) *FakeBMS {
	return f.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	})
}

// Calls returns the method+path of every request seen, in order.
func (f *FakeBMS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeBMS) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
}

func (f *FakeBMS) serve(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	f.mu.Lock()
	fn, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()
	if !ok {
		f.t.Logf("fake BMS: unexpected %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
		return
	}
	fn(w, r)
}
