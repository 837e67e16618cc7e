package assessments

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

func newTestHandler(t *testing.T, fake *testutil.FakeBMS) *Handler {
	t.Helper()
	logger := zap.NewNop()
	client, err := bms.New(fake.URL(), 5*time.Second, logger)
	if err != nil {
		t.Fatalf("bms.New failed: %v", err)
	}
	return NewHandler(client, testutil.NewSessionManager(t), uierrors.NewErrorLogger(logger), logger)
}

func TestComparisonRows(t *testing.T) {
	scores := []models.AssessmentScore{
		{EmpID: 1, Name: "Priya", EmpScore: 6},
		{EmpID: 2, Name: "Arjun", EmpScore: 9},
		{EmpID: 1, Name: "Priya", EmpScore: 8},
	}

	rows := comparisonRows(scores)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Ranked by average descending: Arjun (9) before Priya (7).
	if rows[0].Name != "Arjun" || rows[0].Average != 9 {
		t.Errorf("row 0: %+v", rows[0])
	}
	if rows[1].Name != "Priya" || rows[1].Average != 7 || rows[1].Best != 8 || rows[1].Attempts != 2 {
		t.Errorf("row 1: %+v", rows[1])
	}
}

func TestValidateAssignment(t *testing.T) {
	valid := models.AssessmentAssignment{Topic: "Go", Date: "2026-03-01", EmpIDs: []int{1}}
	if msg := validateAssignment(valid); msg != "" {
		t.Errorf("valid assignment rejected: %q", msg)
	}

	tests := []struct {
		name string
		in   models.AssessmentAssignment
	}{
		{"no topic", models.AssessmentAssignment{Date: "2026-03-01", EmpIDs: []int{1}}},
		{"no date", models.AssessmentAssignment{Topic: "Go", EmpIDs: []int{1}}},
		{"bad date", models.AssessmentAssignment{Topic: "Go", Date: "01/03/2026", EmpIDs: []int{1}}},
		{"no candidates", models.AssessmentAssignment{Topic: "Go", Date: "2026-03-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := validateAssignment(tt.in); msg == "" {
				t.Error("expected a validation message, got none")
			}
		})
	}
}

func TestHandleAssign_PostsToBMS(t *testing.T) {
	var gotBody models.AssessmentAssignment
	fake := testutil.NewFakeBMS(t)
	fake.On("POST", "/bms/assessments/assign", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})
	handler := newTestHandler(t, fake)

	form := url.Values{
		"topic": {"Go"},
		"date":  {"2026-03-01"},
		"empId": {"101", "102"},
	}
	req := httptest.NewRequest("POST", "/assign-assessment", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = auth.WithTestSession(req, testutil.AdminSession())

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleAssign(rec, req)
	}()

	if gotBody.Topic != "Go" || len(gotBody.EmpIDs) != 2 {
		t.Errorf("posted assignment: %+v", gotBody)
	}
}

func TestServeCompare_FetchesTopic(t *testing.T) {
	fake := testutil.NewFakeBMS(t)
	fake.OnJSON("GET", "/bms/scores/filter", []models.AssessmentScore{})
	handler := newTestHandler(t, fake)

	req := httptest.NewRequest("GET", "/assessmentcomp?topic=Go", nil)
	req = auth.WithTestSession(req, testutil.AdminSession())

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.ServeCompare(rec, req)
	}()

	calls := fake.Calls()
	if len(calls) != 1 || calls[0] != "GET /bms/scores/filter" {
		t.Errorf("calls: %v", calls)
	}
}
