package roster

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	uierrors "github.com/amanguptabounteous/benchboard/internal/app/features/errors"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
	"github.com/amanguptabounteous/benchboard/internal/bms"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
	"github.com/amanguptabounteous/benchboard/internal/testutil"
)

func TestFilterFromQuery(t *testing.T) {
	req := httptest.NewRequest("GET",
		"/home?search=rao&deployable=1&sort=asc&level=L1&level=L2&location=Pune&skill=Go", nil)

	f := filterFromQuery(req)

	if f.Search != "rao" {
		t.Errorf("Search: got %q", f.Search)
	}
	if !f.OnlyDeployable {
		t.Error("OnlyDeployable: got false, want true")
	}
	if !f.SortAscending {
		t.Error("SortAscending: got false, want true")
	}
	if len(f.Levels) != 2 {
		t.Errorf("Levels: got %d entries, want 2", len(f.Levels))
	}
	if _, ok := f.Locations["Pune"]; !ok {
		t.Error("Locations: missing Pune")
	}
	if _, ok := f.Skills["Go"]; !ok {
		t.Error("Skills: missing Go")
	}
}

func TestFilterFromQuery_Empty(t *testing.T) {
	f := filterFromQuery(httptest.NewRequest("GET", "/home", nil))
	if f.Search != "" || f.OnlyDeployable || f.SortAscending {
		t.Errorf("empty query produced non-default filter: %+v", f)
	}
	if len(f.Levels)+len(f.Locations)+len(f.Skills) != 0 {
		t.Error("empty query produced non-empty category sets")
	}
}

func TestCandidateInputFromForm(t *testing.T) {
	form := url.Values{
		"empId":          {"1042"},
		"name":           {"Priya Rao"},
		"primarySkill":   {"Go"},
		"level":          {"L2"},
		"benchStartDate": {"2026-01-15"},
		"isDeployable":   {"1"},
	}
	req := httptest.NewRequest("POST", "/home/candidates", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.ParseForm()

	in, msg := candidateInputFromForm(req)
	if msg != "" {
		t.Fatalf("unexpected validation message: %q", msg)
	}
	if in.EmpID != 1042 || in.Name != "Priya Rao" || !in.IsDeployable {
		t.Errorf("parsed input: %+v", in)
	}
}

func TestCandidateInputFromForm_Invalid(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"bad empId", url.Values{"empId": {"abc"}, "name": {"X"}, "primarySkill": {"Go"}, "level": {"L1"}}},
		{"missing name", url.Values{"empId": {"7"}, "primarySkill": {"Go"}, "level": {"L1"}}},
		{"bad date", url.Values{"empId": {"7"}, "name": {"X"}, "primarySkill": {"Go"}, "level": {"L1"}, "benchStartDate": {"15-01-2026"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/home/candidates", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.ParseForm()
			if _, msg := candidateInputFromForm(req); msg == "" {
				t.Error("expected a validation message, got none")
			}
		})
	}
}

func newTestHandler(t *testing.T, upstream http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	logger := zap.NewNop()
	client, err := bms.New(srv.URL, 5*time.Second, logger)
	if err != nil {
		t.Fatalf("bms.New failed: %v", err)
	}
	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return NewHandler(client, sessionMgr, uierrors.NewErrorLogger(logger), logger)
}

func TestServeList_SummaryStrip(t *testing.T) {
	testutil.BootTemplates(t)

	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Candidate{
			{EmpID: 1, Name: "Priya Rao", PersonStatus: "ON_BENCH", PrimarySkill: "Go", AgingDays: 12},
			{EmpID: 2, Name: "Dev Nair", PersonStatus: "ON_BENCH", PrimarySkill: "Go", AgingDays: 45},
			{EmpID: 3, Name: "Asha Iyer", PersonStatus: "DEPLOYED", PrimarySkill: "React", AgingDays: 95},
		})
	})

	req := httptest.NewRequest("GET", "/home", nil)
	req = auth.WithTestSession(req, &auth.Session{Token: "tok", Role: "admin", Name: "Asha"})

	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"ON_BENCH <strong>2</strong>",
		"DEPLOYED <strong>1</strong>",
		"&lt;30 <strong>1</strong>",
		"90+ <strong>1</strong>",
		"Go <strong>2</strong>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("summary strip missing %q", want)
		}
	}
}

func TestHandleCreate_ForbiddenForTrainer(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for a forbidden request")
	})

	req := httptest.NewRequest("POST", "/home/candidates", nil)
	req = auth.WithTestSession(req, &auth.Session{Token: "tok", Role: "trainer", Name: "Mentor"})

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleCreate(rec, req)
	}()

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestHandleCreate_AdminPostsToBMS(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})

	form := url.Values{
		"empId":        {"1042"},
		"name":         {"Priya Rao"},
		"primarySkill": {"Go"},
		"level":        {"L2"},
	}
	req := httptest.NewRequest("POST", "/home/candidates", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = auth.WithTestSession(req, &auth.Session{Token: "tok", Role: "admin", Name: "Asha"})

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if gotPath != "/bms/candidate" {
		t.Errorf("upstream path: got %q, want %q", gotPath, "/bms/candidate")
	}
	if gotBody["empId"] != float64(1042) {
		t.Errorf("posted empId: got %v", gotBody["empId"])
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected redirect %d, got %d", http.StatusSeeOther, rec.Code)
	}
}
