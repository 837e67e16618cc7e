// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/store/audit"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

type Handler struct {
	SessionMgr *auth.SessionManager
	Audit      *audit.Store
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, auditStore *audit.Store, logger *zap.Logger) *Handler {
	return &Handler{
		SessionMgr: sessionMgr,
		Audit:      auditStore,
		Log:        logger,
	}
}

// ServeLogout clears the session cookie and sends the user back to the
// sign-in page. Accepts both GET and POST so the nav form and plain links
// work.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if s, ok := auth.CurrentSession(r); ok {
		h.Audit.Record(r.Context(), audit.Event{
			EventType: audit.EventSignout,
			LoginID:   s.LoginID,
			Role:      s.Role,
			IP:        r.RemoteAddr,
		})
	}

	h.SessionMgr.Clear(w, r)
	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}
