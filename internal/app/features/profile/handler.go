// internal/app/features/profile/handler.go
package profile

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	uierrors "github.com/amanguptabounteous/benchboard/internal/app/features/errors"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

// Handler is the feature-level handler for the candidate profile
// (/dashboard/{empId}).
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

// fail routes a BMS error to the right response: expired sessions go back
// to sign-in, upstream messages surface to the user, anything else is a 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, logMsg string, err error, backURL string) {
	if errors.Is(err, bms.ErrUnauthorized) {
		h.SessionMgr.ExpireAndRedirect(w, r)
		return
	}
	var reqErr *bms.RequestError
	if errors.As(err, &reqErr) {
		h.ErrLog.LogBadRequest(w, r, logMsg, err, reqErr.Message, backURL)
		return
	}
	h.ErrLog.LogServerError(w, r, logMsg, err,
		"Something went wrong talking to the bench service. Please try again.", backURL)
}
