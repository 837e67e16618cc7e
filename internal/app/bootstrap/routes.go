// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	analyticsfeature "github.com/amanguptabounteous/benchboard/internal/app/features/analytics"
	assessmentsfeature "github.com/amanguptabounteous/benchboard/internal/app/features/assessments"
	errorsfeature "github.com/amanguptabounteous/benchboard/internal/app/features/errors"
	healthfeature "github.com/amanguptabounteous/benchboard/internal/app/features/health"
	logoutfeature "github.com/amanguptabounteous/benchboard/internal/app/features/logout"
	manageusersfeature "github.com/amanguptabounteous/benchboard/internal/app/features/manageusers"
	profilefeature "github.com/amanguptabounteous/benchboard/internal/app/features/profile"
	reportsfeature "github.com/amanguptabounteous/benchboard/internal/app/features/reports"
	rosterfeature "github.com/amanguptabounteous/benchboard/internal/app/features/roster"
	signinfeature "github.com/amanguptabounteous/benchboard/internal/app/features/signin"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend connections, schema setup,
// and any Startup hooks have completed. Benchboard initializes the template
// engine, applies the session middleware that loads the BMS bearer token
// into each request, and mounts feature routers for all application areas:
// sign-in, roster, candidate profiles, reports, analytics, user management,
// and assessments.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads the session into context and arms the
	// single-redirect guard used when the BMS reports an expired token.
	r.Use(sessionMgr.LoadSession)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.BMS, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing: signed-in users go to the roster, everyone else signs in.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		if _, ok := auth.CurrentSession(req); ok {
			http.Redirect(w, req, "/home", http.StatusSeeOther)
			return
		}
		http.Redirect(w, req, "/signin", http.StatusSeeOther)
	})

	// Authentication
	signinHandler := signinfeature.NewHandler(deps.BMS, sessionMgr, deps.Audit, appCfg.SessionKey, logger)
	r.Mount("/signin", signinfeature.Routes(signinHandler))
	r.Mount("/register", signinfeature.RegisterRoutes(signinHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, deps.Audit, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Bench roster
	rosterHandler := rosterfeature.NewHandler(deps.BMS, sessionMgr, errLog, logger)
	r.Mount("/home", rosterfeature.Routes(rosterHandler, sessionMgr))

	// Candidate profiles
	profileHandler := profilefeature.NewHandler(deps.BMS, sessionMgr, errLog, logger)
	r.Mount("/dashboard", profilefeature.Routes(profileHandler, sessionMgr))

	// Bench reports and CSV export
	reportsHandler := reportsfeature.NewHandler(deps.BMS, sessionMgr, deps.Audit, errLog, logger)
	r.Mount("/reports", reportsfeature.Routes(reportsHandler, sessionMgr))

	// Analytics dashboards
	analyticsHandler := analyticsfeature.NewHandler(deps.BMS, sessionMgr, errLog, logger)
	r.Mount("/analytics", analyticsfeature.Routes(analyticsHandler, sessionMgr))

	// Trainer email management (admin only)
	manageUsersHandler := manageusersfeature.NewHandler(deps.BMS, sessionMgr, deps.Audit, errLog, logger)
	r.Mount("/manage-users", manageusersfeature.Routes(manageUsersHandler, sessionMgr))

	// Assessments: score comparison and assignment
	assessmentsHandler := assessmentsfeature.NewHandler(deps.BMS, sessionMgr, errLog, logger)
	r.Mount("/assessmentcomp", assessmentsfeature.CompareRoutes(assessmentsHandler, sessionMgr))
	r.Mount("/assign-assessment", assessmentsfeature.AssignRoutes(assessmentsHandler, sessionMgr))

	return r, nil
}
