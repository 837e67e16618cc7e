// internal/app/features/analytics/charts.go
package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
)

// JSON chart endpoints. Thin pass-throughs: the BMS shapes already match
// what the chart scripts expect.

// GET /analytics/data/status-distribution
func (h *Handler) ServeStatusDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()
	v, err := h.BMS.StatusDistribution(ctx)
	h.writeJSON(w, r, "status distribution", v, err)
}

// GET /analytics/data/aging
func (h *Handler) ServeAging(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()
	v, err := h.BMS.AgingAnalysis(ctx)
	h.writeJSON(w, r, "aging analysis", v, err)
}

// GET /analytics/data/trend?range=daily|monthly
func (h *Handler) ServeTrend(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()
	if r.URL.Query().Get("range") == "monthly" {
		v, err := h.BMS.BenchStatusMonthly(ctx)
		h.writeJSON(w, r, "monthly trend", v, err)
		return
	}
	v, err := h.BMS.BenchStatusDaily(ctx)
	h.writeJSON(w, r, "daily trend", v, err)
}

// GET /analytics/data/top-performers
func (h *Handler) ServeTopPerformers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()
	if topic := r.URL.Query().Get("topic"); topic != "" {
		v, err := h.BMS.TopPerformersByTopic(ctx, topic)
		h.writeJSON(w, r, "top performers by topic", v, err)
		return
	}
	v, err := h.BMS.TopPerformers(ctx)
	h.writeJSON(w, r, "top performers", v, err)
}

// GET /analytics/data/main-topic/{topic}
func (h *Handler) ServeMainTopicReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()
	v, err := h.BMS.MainTopicReport(ctx, chi.URLParam(r, "topic"))
	h.writeJSON(w, r, "main topic report", v, err)
}

// GET /analytics/data/topic/{topic}
func (h *Handler) ServeTopicReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()
	v, err := h.BMS.TopicReport(ctx, chi.URLParam(r, "topic"))
	h.writeJSON(w, r, "topic report", v, err)
}
