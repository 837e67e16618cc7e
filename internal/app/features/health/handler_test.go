package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/features/health"
	"github.com/amanguptabounteous/benchboard/internal/testutil"
)

func TestServe_UpstreamHealthy(t *testing.T) {
	client := testutil.NewBMSClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})
	handler := health.NewHandler(nil, client, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" || resp["upstream"] != "connected" {
		t.Errorf("response: %v", resp)
	}
	if resp["database"] != "disabled" {
		t.Errorf("database without a Mongo client: got %q, want disabled", resp["database"])
	}
}

func TestServe_UpstreamRejectsAnonymous(t *testing.T) {
	// A 401 from the BMS still proves it is up.
	client := testutil.NewBMSClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	handler := health.NewHandler(nil, client, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestServe_UpstreamDown(t *testing.T) {
	client := testutil.NewBMSClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	handler := health.NewHandler(nil, client, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["upstream"] != "unreachable" {
		t.Errorf("upstream: got %q", resp["upstream"])
	}
}
