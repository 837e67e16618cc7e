// internal/app/features/analytics/page.go
package analytics

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/app/system/viewdata"
	"github.com/amanguptabounteous/benchboard/internal/bms"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

type pageData struct {
	viewdata.BaseVM
	Statuses []models.StatusCount
	Aging    []models.AgingBucket
	Trend    []models.TrendPoint
	Monthly  bool
	Top      []models.TopPerformer

	MainTopic     string
	Topic         string
	MainReport    []models.TopicReport
	TopicBreakout []models.TopicReport

	// Per-chart load failures, shown inline in the owning card. The page
	// renders whatever did load.
	StatusesErr string
	AgingErr    string
	TrendErr    string
	TopErr      string
	ReportErr   string
}

// ServePage renders the analytics dashboard. The summary charts load in
// parallel; the skill-gap pane follows the main-topic/topic drill-down:
// picking a new main topic discards any previously selected sub-topic.
// GET /analytics
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mainTopic := strings.TrimSpace(q.Get("main"))
	topic := strings.TrimSpace(q.Get("topic"))
	prevMain := strings.TrimSpace(q.Get("prev_main"))
	if prevMain != "" && prevMain != mainTopic {
		// Main topic changed: the old sub-topic selection is stale.
		topic = ""
	}
	monthly := q.Get("range") == "monthly"

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	data := pageData{
		BaseVM:    viewdata.NewBaseVM(r, "Analytics", "/home"),
		Monthly:   monthly,
		MainTopic: mainTopic,
		Topic:     topic,
	}

	// Each chart records its own failure and degrades to an inline notice;
	// only a 401 aborts the page.
	var statusesErr, agingErr, trendErr, topErr, mainReportErr, topicErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Statuses, statusesErr = h.BMS.StatusDistribution(gctx)
		return authOnly(statusesErr)
	})
	g.Go(func() error {
		data.Aging, agingErr = h.BMS.AgingAnalysis(gctx)
		return authOnly(agingErr)
	})
	g.Go(func() error {
		if monthly {
			data.Trend, trendErr = h.BMS.BenchStatusMonthly(gctx)
		} else {
			data.Trend, trendErr = h.BMS.BenchStatusDaily(gctx)
		}
		return authOnly(trendErr)
	})
	g.Go(func() error {
		data.Top, topErr = h.BMS.TopPerformers(gctx)
		return authOnly(topErr)
	})
	if mainTopic != "" {
		g.Go(func() error {
			data.MainReport, mainReportErr = h.BMS.MainTopicReport(gctx, mainTopic)
			return authOnly(mainReportErr)
		})
	}
	if topic != "" {
		g.Go(func() error {
			data.TopicBreakout, topicErr = h.BMS.TopicReport(gctx, topic)
			return authOnly(topicErr)
		})
	}
	if err := g.Wait(); err != nil {
		h.SessionMgr.ExpireAndRedirect(w, r)
		return
	}

	reportErr := mainReportErr
	if reportErr == nil {
		reportErr = topicErr
	}
	data.StatusesErr = h.chartNotice(r, "fetch status distribution", statusesErr)
	data.AgingErr = h.chartNotice(r, "fetch aging analysis", agingErr)
	data.TrendErr = h.chartNotice(r, "fetch bench trend", trendErr)
	data.TopErr = h.chartNotice(r, "fetch top performers", topErr)
	data.ReportErr = h.chartNotice(r, "fetch skill-gap report", reportErr)

	templates.Render(w, r, "analytics", data)
}

// authOnly keeps 401s fatal for the fetch group and swallows everything
// else so sibling fetches keep running.
func authOnly(err error) error {
	if errors.Is(err, bms.ErrUnauthorized) {
		return err
	}
	return nil
}

// chartNotice logs a failed chart fetch and returns the inline message for
// its card. Empty when the chart loaded fine.
func (h *Handler) chartNotice(r *http.Request, what string, err error) string {
	if err == nil {
		return ""
	}
	h.Log.Warn(what+" failed", zap.String("path", r.URL.Path), zap.Error(err))
	return "This chart could not be loaded right now."
}
