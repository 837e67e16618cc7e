// internal/app/features/roster/routes.go
package roster

import (
	"github.com/go-chi/chi/v5"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

// Routes serves the bench roster, mounted at /home.
func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessionMgr.RequireSignedIn)
	r.Get("/", h.ServeList)
	r.Post("/candidates", h.HandleCreate)
	return r
}
