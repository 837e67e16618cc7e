// internal/testutil/http.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

// WithChiURLParam returns a request whose chi route context carries the
// given URL parameter, so handlers can be tested without a router. Calls
// chain: each adds to the route context already on the request.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// AdminSession returns a signed-in admin session for handler tests.
func AdminSession() *auth.Session {
	return &auth.Session{
		Token:   "test-token",
		Role:    "admin",
		Name:    "Test Admin",
		LoginID: "admin@example.com",
	}
}

// TrainerSession returns a signed-in trainer session for handler tests.
func TrainerSession() *auth.Session {
	return &auth.Session{
		Token:   "test-token",
		Role:    "trainer",
		Name:    "Test Trainer",
		LoginID: "trainer@example.com",
	}
}

// NewSessionManager builds a session manager with test-grade settings.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	m, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return m
}

// NewBMSClient points a client at fn served over a local httptest server.
func NewBMSClient(t *testing.T, fn http.HandlerFunc) *bms.Client {
	t.Helper()
	srv := StartFakeBMS(t, fn)
	client, err := bms.New(srv.URL(), 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("bms.New failed: %v", err)
	}
	return client
}
