package bms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(srv.URL, 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

func TestNew_EmptyBaseURL(t *testing.T) {
	if _, err := New("   ", time.Second, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestCandidates_SendsBearerAndDecodes(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bms/details" {
			t.Errorf("path: got %q, want /bms/details", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"empId":7,"name":"Asha Rao","agingDays":12,"isDeployable":true}]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := WithToken(context.Background(), "tok-123")

	list, err := c.Candidates(ctx)
	if err != nil {
		t.Fatalf("Candidates() failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization: got %q", gotAuth)
	}
	if gotReqID == "" {
		t.Error("expected X-Request-ID header")
	}
	if len(list) != 1 || list[0].EmpID != 7 || list[0].Name != "Asha Rao" {
		t.Errorf("decoded list: %+v", list)
	}
}

func TestCandidates_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := newTestClient(t, srv).Candidates(context.Background()); err != nil {
		t.Fatalf("Candidates() failed: %v", err)
	}
}

func TestRequestError_ServerMessagePassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"employee 7 already exists"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Candidate(context.Background(), 7)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusConflict {
		t.Errorf("Status: got %d", reqErr.Status)
	}
	if reqErr.Message != "employee 7 already exists" {
		t.Errorf("Message: got %q", reqErr.Message)
	}
}

func TestRequestError_GenericOnEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Candidates(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if reqErr.Message == "" {
		t.Error("expected a generic message for empty error body")
	}
}

func TestUnauthorized_WrapsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Candidates(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCandidatesByBenchEndRange_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bms/details/bench-end-date-range" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start") != "2024-01-01" || q.Get("end") != "2024-03-31" {
			t.Errorf("query: got %v", q)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := newTestClient(t, srv).CandidatesByBenchEndRange(context.Background(), "2024-01-01", "2024-03-31"); err != nil {
		t.Fatalf("CandidatesByBenchEndRange() failed: %v", err)
	}
}

func TestAddTrainerEmail_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bms/admin/add-trainer-email" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte("trainer email added\n"))
	}))
	defer srv.Close()

	msg, err := newTestClient(t, srv).AddTrainerEmail(context.Background(), "t@example.com")
	if err != nil {
		t.Fatalf("AddTrainerEmail() failed: %v", err)
	}
	if msg != "trainer email added" {
		t.Errorf("message: got %q", msg)
	}
}

func TestCreateCandidate_PostsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bms/candidate" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type: got %q", ct)
		}
		w.Write([]byte(`{"empId":55,"name":"New Hire"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	got, err := c.CreateCandidate(context.Background(), candidateInputFixture())
	if err != nil {
		t.Fatalf("CreateCandidate() failed: %v", err)
	}
	if got.EmpID != 55 {
		t.Errorf("EmpID: got %d, want 55", got.EmpID)
	}
}
