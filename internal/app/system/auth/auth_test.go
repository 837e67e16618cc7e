package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestRequireSignedIn_NoSession_RedirectsToSignin(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/home", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/signin") {
		t.Errorf("expected redirect to /signin, got %q", loc)
	}
}

func TestRequireSignedIn_NoSession_API_Returns401(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/analytics/charts/status", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireSignedIn_WithSession_Passes(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/home", nil)
	req = auth.WithTestSession(req, &auth.Session{Token: "tok", Role: "trainer"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestRequireRole_WrongRole_RedirectsToForbidden(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/manage-users", nil)
	req.Header.Set("Accept", "text/html")
	req = auth.WithTestSession(req, &auth.Session{Token: "tok", Role: "trainer"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/forbidden" {
		t.Errorf("expected redirect to /forbidden, got %q", loc)
	}
}

func TestRequireRole_CorrectRole_Passes(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/manage-users", nil)
	req = auth.WithTestSession(req, &auth.Session{Token: "tok", Role: "admin"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestLoadSession_PutsTokenInContext(t *testing.T) {
	sm := newTestSessionManager(t)

	// Build a request whose cookie carries a signed-in session.
	seed := httptest.NewRequest("POST", "/signin", nil)
	seedRec := httptest.NewRecorder()
	err := sm.SignIn(seedRec, seed, bms.LoginResult{
		Token: "tok-abc", RefreshToken: "ref", Role: "Admin", Name: "Asha",
	}, "asha@example.com")
	if err != nil {
		t.Fatalf("SignIn() failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/home", nil)
	for _, c := range seedRec.Result().Cookies() {
		req.AddCookie(c)
	}

	var got *auth.Session
	var tokenInCtx string
	handler := sm.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentSession(r)
		tokenInCtx, _ = bms.TokenFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("expected a session in context")
	}
	if got.Role != "admin" {
		t.Errorf("Role: got %q, want %q (lowercased)", got.Role, "admin")
	}
	if got.Name != "Asha" || got.LoginID != "asha@example.com" {
		t.Errorf("session: %+v", got)
	}
	if tokenInCtx != "tok-abc" {
		t.Errorf("bearer token in context: got %q", tokenInCtx)
	}
}

func TestExpireAndRedirect_OncePerRequest(t *testing.T) {
	sm := newTestSessionManager(t)

	req := httptest.NewRequest("GET", "/dashboard/7", nil)
	req.Header.Set("Accept", "text/html")
	req = auth.WithTestSession(req, &auth.Session{Token: "tok", Role: "admin"})
	rec := httptest.NewRecorder()

	// Two slices of the same page both report 401.
	sm.ExpireAndRedirect(rec, req)
	sm.ExpireAndRedirect(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	locations := rec.Result().Header.Values("Location")
	if len(locations) != 1 {
		t.Errorf("expected exactly one Location header, got %v", locations)
	}
	if !strings.HasPrefix(locations[0], "/signin") {
		t.Errorf("expected redirect to /signin, got %q", locations[0])
	}
}
