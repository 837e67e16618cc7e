// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/bms"
)

const (
	tokenKey        = "token"
	refreshTokenKey = "refresh_token"
	roleKey         = "role"
	nameKey         = "name"
	loginIDKey      = "login_id"
)

// Session is what the rest of the application sees: the BMS-issued tokens
// plus the role and display name captured at sign-in. Exactly one Session is
// visible per request; it is only ever mutated through SignIn and Clear.
type Session struct {
	Token        string
	RefreshToken string
	Role         string // admin | trainer
	Name         string
	LoginID      string
}

type ctxKey string

const (
	currentSessionKey ctxKey = "currentSession"
	redirectGuardKey  ctxKey = "redirectGuard"
)

// SessionManager owns the cookie-backed session store.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds the cookie store. The `secure` flag controls the
// Secure attribute and SameSite mode; use false for http://localhost dev.
func NewSessionManager(sessionKey, sessionName, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure), zap.String("domain", domain))

	return &SessionManager{store: store, name: sessionName, log: logger}, nil
}

// CurrentSession returns the session and a found flag.
func CurrentSession(r *http.Request) (*Session, bool) {
	s, ok := r.Context().Value(currentSessionKey).(*Session)
	return s, ok
}

// SignIn persists the BMS login result into the cookie session.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, res bms.LoginResult, loginID string) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[tokenKey] = res.Token
	sess.Values[refreshTokenKey] = res.RefreshToken
	sess.Values[roleKey] = strings.ToLower(res.Role)
	sess.Values[nameKey] = res.Name
	sess.Values[loginIDKey] = loginID
	return sess.Save(r, w)
}

// Clear drops every session value. Used by logout and by 401 handling.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) {
	sess, _ := m.store.Get(r, m.name)
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("session clear failed", zap.Error(err))
	}
}

// LoadSession injects the Session into context when the cookie holds a
// token, and always arms the per-request 401 redirect guard. The bearer
// token is also placed where the BMS client finds it, so handlers never
// thread it by hand.
func (m *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), redirectGuardKey, &sync.Once{})

		sess, _ := m.store.Get(r, m.name)
		token := getString(sess, tokenKey)
		role := getString(sess, roleKey)
		if token != "" && role != "" {
			s := &Session{
				Token:        token,
				RefreshToken: getString(sess, refreshTokenKey),
				Role:         role,
				Name:         getString(sess, nameKey),
				LoginID:      getString(sess, loginIDKey),
			}
			ctx = context.WithValue(ctx, currentSessionKey, s)
			ctx = bms.WithToken(ctx, token)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSignedIn redirects visitors without a session to /signin,
// preserving the requested path as a return target.
func (m *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentSession(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		redirectToSignin(w, r)
	})
}

// RequireRole admits only sessions whose role is in the allowed set.
// Signed-out visitors go to /signin; wrong-role sessions go to /forbidden.
func (m *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := CurrentSession(r)
			if !ok {
				redirectToSignin(w, r)
				return
			}
			if _, has := set[strings.ToLower(s.Role)]; !has {
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ExpireAndRedirect clears the session and sends the browser to /signin.
// It fires at most once per request: when several parallel slice fetches
// all come back 401, only the first caller writes the redirect.
func (m *SessionManager) ExpireAndRedirect(w http.ResponseWriter, r *http.Request) {
	run := func() {
		m.log.Info("session expired, redirecting to sign-in",
			zap.String("path", r.URL.Path))
		m.Clear(w, r)
		redirectToSignin(w, r)
	}
	if once, ok := r.Context().Value(redirectGuardKey).(*sync.Once); ok {
		once.Do(run)
		return
	}
	run()
}

// WithTestSession injects a session into the request context for handler
// tests, bypassing the cookie store.
func WithTestSession(r *http.Request, s *Session) *http.Request {
	ctx := context.WithValue(r.Context(), redirectGuardKey, &sync.Once{})
	if s != nil {
		ctx = context.WithValue(ctx, currentSessionKey, s)
		if s.Token != "" {
			ctx = bms.WithToken(ctx, s.Token)
		}
	}
	return r.WithContext(ctx)
}

// helpers

func redirectToSignin(w http.ResponseWriter, r *http.Request) {
	ret := url.QueryEscape(r.URL.RequestURI())
	if wantsHTML(r) {
		http.Redirect(w, r, "/signin?return="+ret, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
