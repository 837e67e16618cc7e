// internal/app/features/roster/create.go
package roster

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	uierrors "github.com/amanguptabounteous/benchboard/internal/app/features/errors"
	"github.com/amanguptabounteous/benchboard/internal/app/system/authz"
	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/bms"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// HandleCreate adds a candidate to the bench from the manual-add form.
// POST /home/candidates
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !authz.CanEditCandidates(r) {
		w.WriteHeader(http.StatusForbidden)
		uierrors.RenderForbidden(w, r, "Only admins can add candidates.", "/home")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse add-candidate form", err,
			"Invalid form data.", "/home")
		return
	}

	in, msg := candidateInputFromForm(r)
	if msg != "" {
		h.redirectWithFlash(w, r, msg)
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if _, err := h.BMS.CreateCandidate(ctx, in); err != nil {
		if errors.Is(err, bms.ErrUnauthorized) {
			h.SessionMgr.ExpireAndRedirect(w, r)
			return
		}
		var reqErr *bms.RequestError
		if errors.As(err, &reqErr) {
			h.redirectWithFlash(w, r, reqErr.Message)
			return
		}
		h.ErrLog.LogServerError(w, r, "create candidate", err,
			"Could not add the candidate. Please try again.", "/home")
		return
	}

	h.redirectWithFlash(w, r, "Candidate added.")
}

func candidateInputFromForm(r *http.Request) (models.CandidateInput, string) {
	var in models.CandidateInput

	empID, err := strconv.Atoi(strings.TrimSpace(r.FormValue("empId")))
	if err != nil || empID <= 0 {
		return in, "Employee ID must be a positive number."
	}

	in.EmpID = empID
	in.Name = strings.TrimSpace(r.FormValue("name"))
	in.Email = strings.TrimSpace(r.FormValue("email"))
	in.PrimarySkill = strings.TrimSpace(r.FormValue("primarySkill"))
	in.SecondarySkill = strings.TrimSpace(r.FormValue("secondarySkill"))
	in.Level = strings.TrimSpace(r.FormValue("level"))
	in.BaseLocation = strings.TrimSpace(r.FormValue("baseLocation"))
	in.DepartmentName = strings.TrimSpace(r.FormValue("departmentName"))
	in.BenchStartDate = strings.TrimSpace(r.FormValue("benchStartDate"))
	in.IsDeployable = r.FormValue("isDeployable") == "1"

	if in.Name == "" || in.PrimarySkill == "" || in.Level == "" {
		return in, "Name, primary skill and level are required."
	}
	if in.BenchStartDate != "" {
		if _, err := time.Parse("2006-01-02", in.BenchStartDate); err != nil {
			return in, "Bench start date must be YYYY-MM-DD."
		}
	}
	return in, ""
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/home?flash="+url.QueryEscape(msg), http.StatusSeeOther)
}
