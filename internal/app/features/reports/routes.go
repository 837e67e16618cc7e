// internal/app/features/reports/routes.go
package reports

import (
	"github.com/go-chi/chi/v5"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

// Routes serves the bench report page and CSV export, mounted at /reports.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)
	r.Get("/", h.ServePage)
	r.Get("/export", h.ServeCSV)
	return r
}
