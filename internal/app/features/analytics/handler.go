// internal/app/features/analytics/handler.go
package analytics

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	uierrors "github.com/amanguptabounteous/benchboard/internal/app/features/errors"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

// Handler is the feature-level handler for the analytics dashboards
// (/analytics plus the JSON chart endpoints the page scripts consume).
type Handler struct {
	BMS        *bms.Client
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(client *bms.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		BMS:        client,
		SessionMgr: sessionMgr,
		Log:        logger,
		ErrLog:     errLog,
	}
}

// writeJSON answers a chart-data request. BMS failures map to a JSON error
// body rather than an error page, since the caller is a fetch() in the
// chart script, except for expired sessions which still get the redirect
// treatment so the next page load lands on /signin.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, logMsg string, v any, err error) {
	if err != nil {
		if errors.Is(err, bms.ErrUnauthorized) {
			h.SessionMgr.ExpireAndRedirect(w, r)
			return
		}
		h.Log.Error(logMsg, zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upstream analytics unavailable"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
