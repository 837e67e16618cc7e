// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
)

// UserCtx returns the session's role (lowercased), display name, and a found
// flag. ok=false means the visitor is not signed in; the role then reads
// "visitor" so templates can branch on it without nil checks.
func UserCtx(r *http.Request) (role string, name string, ok bool) {
	s, ok := auth.CurrentSession(r)
	if !ok {
		return "visitor", "", false
	}
	return strings.ToLower(s.Role), s.Name, true
}

// IsAdmin reports whether the current request's session carries the admin
// role. Admin gates the Manage Users page and candidate-mutating actions.
func IsAdmin(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// IsTrainer reports whether the current request's session carries the
// trainer role.
func IsTrainer(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == "trainer"
}

// CanEditCandidates reports whether the session may add or update bench
// candidates. Only admins can.
func CanEditCandidates(r *http.Request) bool {
	return IsAdmin(r)
}

// CanLeaveFeedback reports whether the session may create or delete mentor
// feedback and remarks. Trainers and admins both can.
func CanLeaveFeedback(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && (role == "admin" || role == "trainer")
}
