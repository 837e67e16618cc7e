// internal/app/features/signin/handler.go
package signin

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/store/audit"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/app/system/viewdata"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

// rememberCookie keeps the last-used login id so the form can pre-fill it.
const rememberCookie = "benchboard-login"

type Handler struct {
	BMS        *bms.Client
	SessionMgr *auth.SessionManager
	Audit      *audit.Store
	Log        *zap.Logger

	remember *securecookie.SecureCookie
}

func NewHandler(client *bms.Client, sessionMgr *auth.SessionManager, auditStore *audit.Store, sessionKey string, logger *zap.Logger) *Handler {
	return &Handler{
		BMS:        client,
		SessionMgr: sessionMgr,
		Audit:      auditStore,
		Log:        logger,
		remember:   securecookie.New([]byte(sessionKey), nil),
	}
}

type signinFormData struct {
	viewdata.BaseVM
	Error     string
	LoginID   string
	Role      string // echoed selection: admin | trainer
	ReturnURL string
}

type registerFormData struct {
	viewdata.BaseVM
	Error   string
	Success bool
	Name    string
	Email   string
}

// ServeSignin renders the sign-in form.
// GET /signin
func (h *Handler) ServeSignin(w http.ResponseWriter, r *http.Request) {
	// Already signed in: straight to the roster.
	if _, ok := auth.CurrentSession(r); ok {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	data := signinFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign In", "/"),
		Role:      "admin",
		ReturnURL: r.URL.Query().Get("return"),
	}
	if c, err := r.Cookie(rememberCookie); err == nil {
		var loginID string
		if h.remember.Decode(rememberCookie, c.Value, &loginID) == nil {
			data.LoginID = loginID
		}
	}

	templates.Render(w, r, "signin", data)
}

// HandleSigninPost authenticates against the BMS endpoint matching the
// selected role and persists the issued tokens into the cookie session.
// POST /signin
func (h *Handler) HandleSigninPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderSigninError(w, r, "Invalid form data.", "", "admin", "")
		return
	}

	loginID := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	role := strings.ToLower(strings.TrimSpace(r.FormValue("role")))
	returnURL := r.FormValue("return")

	if loginID == "" || password == "" {
		h.renderSigninError(w, r, "Please enter your email and password.", loginID, role, returnURL)
		return
	}
	if role != "admin" && role != "trainer" {
		h.renderSigninError(w, r, "Please choose a role.", loginID, role, returnURL)
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	var res bms.LoginResult
	var err error
	if role == "trainer" {
		res, err = h.BMS.TrainerLogin(ctx, loginID, password)
	} else {
		res, err = h.BMS.AdminLogin(ctx, loginID, password)
	}
	if err != nil {
		h.Audit.Record(ctx, audit.Event{
			EventType: audit.EventSigninFailed,
			LoginID:   loginID,
			Role:      role,
			IP:        r.RemoteAddr,
		})
		h.renderSigninError(w, r, loginMessage(err), loginID, role, returnURL)
		return
	}

	// The BMS login response may omit the role; fall back to the selection
	// the backend just honored.
	if res.Role == "" {
		res.Role = role
	}
	if claims, cErr := bms.ParseTokenClaims(res.Token); cErr == nil && claims.Expired(time.Now()) {
		h.renderSigninError(w, r, "The sign-in service returned an expired token. Please try again.", loginID, role, returnURL)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, res, loginID); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		h.renderSigninError(w, r, "Could not start your session. Please try again.", loginID, role, returnURL)
		return
	}

	if encoded, err := h.remember.Encode(rememberCookie, loginID); err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     rememberCookie,
			Value:    encoded,
			Path:     "/signin",
			MaxAge:   int((30 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
		})
	}

	h.Audit.Record(ctx, audit.Event{
		EventType: audit.EventSignin,
		LoginID:   loginID,
		Role:      strings.ToLower(res.Role),
		IP:        r.RemoteAddr,
	})
	h.Log.Info("signed in", zap.String("login_id", loginID), zap.String("role", role))

	dest := "/home"
	if returnURL != "" && strings.HasPrefix(returnURL, "/") && !strings.HasPrefix(returnURL, "//") {
		dest = returnURL
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// ServeRegister renders the admin registration form.
// GET /register
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "register", registerFormData{
		BaseVM: viewdata.NewBaseVM(r, "Register", "/signin"),
	})
}

// HandleRegisterPost forwards the registration to the BMS, which owns the
// eligibility rules.
// POST /register
func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data.", "", "")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if name == "" || email == "" || password == "" {
		h.renderRegisterError(w, r, "All fields are required.", name, email)
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.BMS.AdminRegister(ctx, bms.RegisterInput{Name: name, Email: email, Password: password}); err != nil {
		h.renderRegisterError(w, r, loginMessage(err), name, email)
		return
	}

	h.Audit.Record(ctx, audit.Event{
		EventType: audit.EventAdminRegister,
		LoginID:   email,
		Role:      "admin",
		IP:        r.RemoteAddr,
	})

	templates.Render(w, r, "register", registerFormData{
		BaseVM:  viewdata.NewBaseVM(r, "Register", "/signin"),
		Success: true,
	})
}

func (h *Handler) renderSigninError(w http.ResponseWriter, r *http.Request, msg, loginID, role, returnURL string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "signin", signinFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign In", "/"),
		Error:     msg,
		LoginID:   loginID,
		Role:      role,
		ReturnURL: returnURL,
	})
}

func (h *Handler) renderRegisterError(w http.ResponseWriter, r *http.Request, msg, name, email string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "register", registerFormData{
		BaseVM: viewdata.NewBaseVM(r, "Register", "/signin"),
		Error:  msg,
		Name:   name,
		Email:  email,
	})
}

// loginMessage passes the BMS message through for user-initiated posts and
// keeps transport failures generic.
func loginMessage(err error) string {
	var reqErr *bms.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return "The sign-in service is unreachable. Please try again."
}
