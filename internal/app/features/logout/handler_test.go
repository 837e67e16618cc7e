package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/features/logout"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

func TestServeLogout_ClearsSessionAndRedirects(t *testing.T) {
	logger := zap.NewNop()
	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	handler := logout.NewHandler(sessionMgr, nil, logger)

	req := httptest.NewRequest("POST", "/logout", nil)
	req = auth.WithTestSession(req, &auth.Session{Token: "tok", Role: "admin", LoginID: "asha@example.com"})

	rec := httptest.NewRecorder()
	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/signin" {
		t.Errorf("Location: got %q, want %q", loc, "/signin")
	}

	// The deletion cookie must expire immediately.
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge >= 0 {
			t.Errorf("expected expired session cookie, got MaxAge %d", c.MaxAge)
		}
	}
}
