// internal/app/features/assessments/routes.go
package assessments

import (
	"github.com/go-chi/chi/v5"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

// CompareRoutes serves the score comparison view, mounted at /assessmentcomp.
func CompareRoutes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)
	r.Get("/", h.ServeCompare)
	return r
}

// AssignRoutes serves assessment assignment, mounted at /assign-assessment.
// Admin only.
func AssignRoutes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)
	r.Use(sessionMgr.RequireRole("admin"))
	r.Get("/", h.ServeAssign)
	r.Post("/", h.HandleAssign)
	return r
}
