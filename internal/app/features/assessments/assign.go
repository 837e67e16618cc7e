// internal/app/features/assessments/assign.go
package assessments

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/app/system/viewdata"
	"github.com/amanguptabounteous/benchboard/internal/bms"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

type assignData struct {
	viewdata.BaseVM
	Candidates []models.Candidate
	Topic      string
	Date       string
	Link       string
	Error      string
	Success    bool
}

// ServeAssign renders the assignment form with the current bench as the
// selectable audience.
// GET /assign-assessment
func (h *Handler) ServeAssign(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	candidates, err := h.BMS.Candidates(ctx)
	if err != nil {
		h.fail(w, r, "fetch candidates for assignment", err, "/home")
		return
	}

	templates.Render(w, r, "assessment_assign", assignData{
		BaseVM:     viewdata.NewBaseVM(r, "Assign Assessment", "/home"),
		Candidates: candidates,
	})
}

// HandleAssign schedules an assessment for the selected candidates.
// POST /assign-assessment
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse assign form", err, "Invalid form data.", "/assign-assessment")
		return
	}

	in := models.AssessmentAssignment{
		Topic: strings.TrimSpace(r.FormValue("topic")),
		Date:  strings.TrimSpace(r.FormValue("date")),
		Link:  strings.TrimSpace(r.FormValue("link")),
	}
	for _, v := range r.PostForm["empId"] {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			in.EmpIDs = append(in.EmpIDs, id)
		}
	}

	if msg := validateAssignment(in); msg != "" {
		h.renderAssignError(w, r, in, msg)
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.BMS.AssignAssessment(ctx, in); err != nil {
		if errors.Is(err, bms.ErrUnauthorized) {
			h.SessionMgr.ExpireAndRedirect(w, r)
			return
		}
		var reqErr *bms.RequestError
		if errors.As(err, &reqErr) {
			h.renderAssignError(w, r, in, reqErr.Message)
			return
		}
		h.ErrLog.LogServerError(w, r, "assign assessment", err,
			"Could not schedule the assessment. Please try again.", "/assign-assessment")
		return
	}

	templates.Render(w, r, "assessment_assign", assignData{
		BaseVM:  viewdata.NewBaseVM(r, "Assign Assessment", "/home"),
		Success: true,
	})
}

func validateAssignment(in models.AssessmentAssignment) string {
	if in.Topic == "" {
		return "Topic is required."
	}
	if in.Date == "" {
		return "Date is required."
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return "Date must be YYYY-MM-DD."
	}
	if len(in.EmpIDs) == 0 {
		return "Select at least one candidate."
	}
	return ""
}

func (h *Handler) renderAssignError(w http.ResponseWriter, r *http.Request, in models.AssessmentAssignment, msg string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "assessment_assign", assignData{
		BaseVM: viewdata.NewBaseVM(r, "Assign Assessment", "/home"),
		Topic:  in.Topic,
		Date:   in.Date,
		Link:   in.Link,
		Error:  msg,
	})
}
