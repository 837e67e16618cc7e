// internal/app/features/manageusers/routes.go
package manageusers

import (
	"github.com/go-chi/chi/v5"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

// Routes serves trainer email management, mounted at /manage-users.
// Admin only.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)
	r.Use(sessionMgr.RequireRole("admin"))
	r.Get("/", h.ServePage)
	r.Post("/", h.HandleAdd)
	return r
}
