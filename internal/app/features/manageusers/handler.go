// internal/app/features/manageusers/handler.go
package manageusers

import (
	"errors"
	"net/http"
	"net/mail"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/amanguptabounteous/benchboard/internal/app/features/errors"
	"github.com/amanguptabounteous/benchboard/internal/app/store/audit"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/app/system/viewdata"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

// Handler is the feature-level handler for the trainer allow-list
// (/manage-users, admin only).
type Handler struct {
	BMS        *bms.Client
	SessionMgr *auth.SessionManager
	Audit      *audit.Store
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(client *bms.Client, sessionMgr *auth.SessionManager, auditStore *audit.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		BMS:        client,
		SessionMgr: sessionMgr,
		Audit:      auditStore,
		Log:        logger,
		ErrLog:     errLog,
	}
}

type pageData struct {
	viewdata.BaseVM
	Emails []string
	Flash  string
	Error  string
}

// ServePage lists the allow-listed trainer emails.
// GET /manage-users
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	emails, err := h.BMS.TrainerEmails(ctx)
	if err != nil {
		if errors.Is(err, bms.ErrUnauthorized) {
			h.SessionMgr.ExpireAndRedirect(w, r)
			return
		}
		h.ErrLog.LogServerError(w, r, "fetch trainer emails", err,
			"Could not load the trainer list. Please try again.", "/home")
		return
	}

	templates.Render(w, r, "manage_users", pageData{
		BaseVM: viewdata.NewBaseVM(r, "Manage Users", "/home"),
		Emails: emails,
		Flash:  r.URL.Query().Get("flash"),
		Error:  r.URL.Query().Get("error"),
	})
}

// HandleAdd allow-lists a trainer email so that address can sign in with
// the trainer role.
// POST /manage-users
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse trainer form", err, "Invalid form data.", "/manage-users")
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	if _, err := mail.ParseAddress(email); err != nil {
		h.redirect(w, r, "", "Enter a valid email address.")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	msg, err := h.BMS.AddTrainerEmail(ctx, email)
	if err != nil {
		if errors.Is(err, bms.ErrUnauthorized) {
			h.SessionMgr.ExpireAndRedirect(w, r)
			return
		}
		var reqErr *bms.RequestError
		if errors.As(err, &reqErr) {
			h.redirect(w, r, "", reqErr.Message)
			return
		}
		h.ErrLog.LogServerError(w, r, "add trainer email", err,
			"Could not add the trainer. Please try again.", "/manage-users")
		return
	}

	var loginID string
	if s, ok := auth.CurrentSession(r); ok {
		loginID = s.LoginID
	}
	h.Audit.Record(ctx, audit.Event{
		EventType: audit.EventTrainerEmail,
		LoginID:   loginID,
		Role:      "admin",
		IP:        r.RemoteAddr,
		Detail:    email,
	})
	h.Log.Info("trainer email added", zap.String("email", email))

	if msg == "" {
		msg = "Trainer added."
	}
	h.redirect(w, r, msg, "")
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, flash, errMsg string) {
	q := url.Values{}
	if flash != "" {
		q.Set("flash", flash)
	}
	if errMsg != "" {
		q.Set("error", errMsg)
	}
	dest := "/manage-users"
	if enc := q.Encode(); enc != "" {
		dest += "?" + enc
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
