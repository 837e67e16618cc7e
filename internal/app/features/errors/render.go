// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/system/authz"
)

// RenderForbidden shows a friendly access-error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signedIn := authz.UserCtx(r)
	if backURL == "" {
		backURL = "/home"
	}

	templates.Render(w, r, "error_forbidden", pageData{
		Title:      "Access denied",
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}

// ErrorLogger pairs a zap logger with the error pages so handlers can log
// the cause and show the user a clean message in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err at error level and renders a 500-class error page
// with the given user-facing message.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.String("path", r.URL.Path), zap.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
	RenderForbidden(w, r, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400-class error page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, zap.String("path", r.URL.Path), zap.Error(err))
	w.WriteHeader(http.StatusBadRequest)
	RenderForbidden(w, r, userMsg, backURL)
}
