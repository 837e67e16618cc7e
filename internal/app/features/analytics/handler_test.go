package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
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

func stubSummary(fake *testutil.FakeBMS) {
	fake.OnJSON("GET", "/bms/analytics/status-distribution", []models.StatusCount{{Status: "ON_BENCH", Count: 12}})
	fake.OnJSON("GET", "/bms/analytics/aging-analysis", []models.AgingBucket{{Label: "<30", Count: 4}})
	fake.OnJSON("GET", "/bms/analytics/bench-status/daily", []models.TrendPoint{})
	fake.OnJSON("GET", "/bms/analytics/bench-status/monthly", []models.TrendPoint{})
	fake.OnJSON("GET", "/bms/analytics/top-performer/overall", []models.TopPerformer{})
}

func TestServePage_MainTopicChangeClearsTopic(t *testing.T) {
	fake := testutil.NewFakeBMS(t)
	stubSummary(fake)
	fake.OnJSON("GET", "/bms/analytics/report/main-topic/Backend", []models.TopicReport{{Topic: "Go"}})
	// No /report/topic route: a stale topic fetch would show up in Calls.

	handler := newTestHandler(t, fake)

	// The user had main=Frontend + topic=React, then switched main to
	// Backend. The sub-topic must not be fetched.
	req := httptest.NewRequest("GET", "/analytics?main=Backend&topic=React&prev_main=Frontend", nil)
	req = auth.WithTestSession(req, testutil.AdminSession())

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.ServePage(rec, req)
	}()

	for _, call := range fake.Calls() {
		if call == "GET /bms/analytics/report/topic/React" {
			t.Error("stale topic was fetched after main-topic change")
		}
	}
}

func TestServePage_KeepsTopicWhenMainUnchanged(t *testing.T) {
	fake := testutil.NewFakeBMS(t)
	stubSummary(fake)
	fake.OnJSON("GET", "/bms/analytics/report/main-topic/Backend", []models.TopicReport{})
	fake.OnJSON("GET", "/bms/analytics/report/topic/Go", []models.TopicReport{})

	handler := newTestHandler(t, fake)

	req := httptest.NewRequest("GET", "/analytics?main=Backend&topic=Go&prev_main=Backend", nil)
	req = auth.WithTestSession(req, testutil.AdminSession())

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.ServePage(rec, req)
	}()

	calls := fake.Calls()
	sort.Strings(calls)
	found := false
	for _, call := range calls {
		if call == "GET /bms/analytics/report/topic/Go" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected topic fetch, calls: %v", calls)
	}
}

func TestServePage_ChartFailureStillRenders(t *testing.T) {
	testutil.BootTemplates(t)

	fake := testutil.NewFakeBMS(t)
	stubSummary(fake)
	fake.On("GET", "/bms/analytics/top-performer/overall", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	handler := newTestHandler(t, fake)

	req := httptest.NewRequest("GET", "/analytics", nil)
	req = auth.WithTestSession(req, testutil.AdminSession())

	// The failed leaderboard degrades to an inline notice; the rest of the
	// page renders normally.
	rec := httptest.NewRecorder()
	handler.ServePage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite chart failure, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "This chart could not be loaded right now.") {
		t.Error("missing inline notice for the failed leaderboard")
	}
	if !strings.Contains(body, "ON_BENCH") {
		t.Error("status distribution missing from rendered page")
	}
}

func TestServeStatusDistribution_JSON(t *testing.T) {
	fake := testutil.NewFakeBMS(t)
	fake.OnJSON("GET", "/bms/analytics/status-distribution", []models.StatusCount{{Status: "ON_BENCH", Count: 12}})
	handler := newTestHandler(t, fake)

	req := httptest.NewRequest("GET", "/analytics/data/status-distribution", nil)
	req = auth.WithTestSession(req, testutil.AdminSession())

	rec := httptest.NewRecorder()
	handler.ServeStatusDistribution(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	var got []models.StatusCount
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Count != 12 {
		t.Errorf("body: %+v", got)
	}
}

func TestServeTrend_MonthlySwitch(t *testing.T) {
	fake := testutil.NewFakeBMS(t)
	fake.OnJSON("GET", "/bms/analytics/bench-status/monthly", []models.TrendPoint{{Period: "2026-02"}})
	handler := newTestHandler(t, fake)

	req := httptest.NewRequest("GET", "/analytics/data/trend?range=monthly", nil)
	req = auth.WithTestSession(req, testutil.AdminSession())

	rec := httptest.NewRecorder()
	handler.ServeTrend(rec, req)

	calls := fake.Calls()
	if len(calls) != 1 || calls[0] != "GET /bms/analytics/bench-status/monthly" {
		t.Errorf("calls: %v", calls)
	}
}

func TestChartEndpoint_UpstreamFailure(t *testing.T) {
	fake := testutil.NewFakeBMS(t)
	fake.On("GET", "/bms/analytics/aging-analysis", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	handler := newTestHandler(t, fake)

	req := httptest.NewRequest("GET", "/analytics/data/aging", nil)
	req = auth.WithTestSession(req, testutil.AdminSession())

	rec := httptest.NewRecorder()
	handler.ServeAging(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected %d, got %d", http.StatusBadGateway, rec.Code)
	}
}
