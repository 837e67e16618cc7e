// internal/app/features/analytics/routes.go
package analytics

import (
	"github.com/go-chi/chi/v5"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

// Routes serves the analytics page and its chart data endpoints,
// mounted at /analytics.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)
	r.Get("/", h.ServePage)
	r.Get("/data/status-distribution", h.ServeStatusDistribution)
	r.Get("/data/aging", h.ServeAging)
	r.Get("/data/trend", h.ServeTrend)
	r.Get("/data/top-performers", h.ServeTopPerformers)
	r.Get("/data/main-topic/{topic}", h.ServeMainTopicReport)
	r.Get("/data/topic/{topic}", h.ServeTopicReport)
	return r
}
