// internal/app/features/profile/routes.go
package profile

import (
	"github.com/go-chi/chi/v5"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

// Routes serves per-candidate profiles, mounted at /dashboard.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)
	r.Get("/{empId}", h.ServeProfile)
	r.Post("/{empId}/cycles", h.HandleCreateCycle)
	r.Post("/{empId}/rounds", h.HandleCreateRound)
	r.Post("/{empId}/feedback", h.HandleAddFeedback)
	r.Post("/{empId}/feedback/{feedbackId}/edit", h.HandleEditFeedback)
	r.Post("/{empId}/feedback/{feedbackId}/delete", h.HandleDeleteFeedback)
	r.Post("/{empId}/remarks", h.HandleAddRemark)
	r.Post("/{empId}/remarks/{remarkId}/delete", h.HandleDeleteRemark)
	r.Post("/{empId}/deployable", h.HandleToggleDeployable)
	return r
}
