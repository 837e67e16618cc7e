// internal/app/features/profile/mutations.go
package profile

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	uierrors "github.com/amanguptabounteous/benchboard/internal/app/features/errors"
	"github.com/amanguptabounteous/benchboard/internal/app/system/authz"
	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// HandleCreateCycle opens a new interview cycle for the candidate.
// POST /dashboard/{empId}/cycles
func (h *Handler) HandleCreateCycle(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.formEmpID(w, r)
	if !ok {
		return
	}
	if !h.requireEdit(w, r, empID) {
		return
	}

	client := strings.TrimSpace(r.FormValue("client"))
	title := strings.TrimSpace(r.FormValue("title"))
	if client == "" || title == "" {
		h.back(w, r, empID, "interviews", 0, "Client and title are required.")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	cycle, err := h.BMS.CreateInterviewCycle(ctx, empID, models.CycleInput{Client: client, Title: title})
	if err != nil {
		h.fail(w, r, "create interview cycle", err, profilePath(empID))
		return
	}
	h.back(w, r, empID, "interviews", cycle.CycleID, "Interview cycle added.")
}

// HandleCreateRound appends a round to the selected cycle. A round can
// only exist inside a cycle, so the selection is validated before any
// network call is made.
// POST /dashboard/{empId}/rounds
func (h *Handler) HandleCreateRound(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.formEmpID(w, r)
	if !ok {
		return
	}
	if !h.requireEdit(w, r, empID) {
		return
	}

	cycleID, err := strconv.Atoi(r.FormValue("cycleId"))
	if err != nil || cycleID <= 0 {
		h.back(w, r, empID, "interviews", 0, "Select an interview cycle before adding a round.")
		return
	}

	in := models.RoundInput{
		Date:             strings.TrimSpace(r.FormValue("date")),
		Panel:            strings.TrimSpace(r.FormValue("panel")),
		Status:           strings.TrimSpace(r.FormValue("status")),
		Feedback:         strings.TrimSpace(r.FormValue("feedback")),
		DetailedFeedback: strings.TrimSpace(r.FormValue("detailedFeedback")),
	}
	if in.Date != "" {
		if _, err := time.Parse("2006-01-02", in.Date); err != nil {
			h.back(w, r, empID, "interviews", cycleID, "Round date must be YYYY-MM-DD.")
			return
		}
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if _, err := h.BMS.CreateCycleRound(ctx, cycleID, in); err != nil {
		h.fail(w, r, "create interview round", err, profilePath(empID))
		return
	}
	h.back(w, r, empID, "interviews", cycleID, "Round added.")
}

// HandleAddFeedback stores a mentor-feedback entry.
// POST /dashboard/{empId}/feedback
func (h *Handler) HandleAddFeedback(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.formEmpID(w, r)
	if !ok {
		return
	}
	if !authz.CanLeaveFeedback(r) {
		w.WriteHeader(http.StatusForbidden)
		uierrors.RenderForbidden(w, r, "Only trainers and admins can leave feedback.", profilePath(empID))
		return
	}

	text := strings.TrimSpace(r.FormValue("feedback"))
	if text == "" {
		h.back(w, r, empID, "training", 0, "Feedback text is required.")
		return
	}
	_, name, _ := authz.UserCtx(r)

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	in := models.MentorFeedbackInput{
		Feedback:    text,
		Date:        time.Now().Format("2006-01-02"),
		TrainerName: name,
	}
	if _, err := h.BMS.CreateMentorFeedback(ctx, empID, in); err != nil {
		h.fail(w, r, "create mentor feedback", err, profilePath(empID))
		return
	}
	h.back(w, r, empID, "training", 0, "Feedback added.")
}

// HandleEditFeedback replaces the text of a mentor-feedback entry. The
// original date and trainer attribution travel as hidden form fields so an
// edit never re-stamps the entry.
// POST /dashboard/{empId}/feedback/{feedbackId}/edit
func (h *Handler) HandleEditFeedback(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.formEmpID(w, r)
	if !ok {
		return
	}
	if !authz.CanLeaveFeedback(r) {
		w.WriteHeader(http.StatusForbidden)
		uierrors.RenderForbidden(w, r, "Only trainers and admins can edit feedback.", profilePath(empID))
		return
	}
	feedbackID, err := strconv.Atoi(chi.URLParam(r, "feedbackId"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse feedbackId", err, "Invalid feedback id.", profilePath(empID))
		return
	}

	text := strings.TrimSpace(r.FormValue("feedback"))
	if text == "" {
		h.back(w, r, empID, "training", 0, "Feedback text is required.")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	in := models.MentorFeedbackInput{
		Feedback:    text,
		Date:        strings.TrimSpace(r.FormValue("date")),
		TrainerName: strings.TrimSpace(r.FormValue("trainerName")),
	}
	if _, err := h.BMS.UpdateMentorFeedback(ctx, feedbackID, in); err != nil {
		h.fail(w, r, "update mentor feedback", err, profilePath(empID))
		return
	}
	h.back(w, r, empID, "training", 0, "Feedback updated.")
}

// HandleDeleteFeedback removes a mentor-feedback entry.
// POST /dashboard/{empId}/feedback/{feedbackId}/delete
func (h *Handler) HandleDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.formEmpID(w, r)
	if !ok {
		return
	}
	if !authz.CanLeaveFeedback(r) {
		w.WriteHeader(http.StatusForbidden)
		uierrors.RenderForbidden(w, r, "Only trainers and admins can delete feedback.", profilePath(empID))
		return
	}
	feedbackID, err := strconv.Atoi(chi.URLParam(r, "feedbackId"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse feedbackId", err, "Invalid feedback id.", profilePath(empID))
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.BMS.DeleteMentorFeedback(ctx, feedbackID); err != nil {
		h.fail(w, r, "delete mentor feedback", err, profilePath(empID))
		return
	}
	h.back(w, r, empID, "training", 0, "Feedback removed.")
}

// HandleAddRemark attaches a remark to the candidate.
// POST /dashboard/{empId}/remarks
func (h *Handler) HandleAddRemark(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.formEmpID(w, r)
	if !ok {
		return
	}
	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		h.back(w, r, empID, "remarks", 0, "Remark text is required.")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if _, err := h.BMS.AddRemark(ctx, empID, text); err != nil {
		h.fail(w, r, "add remark", err, profilePath(empID))
		return
	}
	h.back(w, r, empID, "remarks", 0, "Remark added.")
}

// HandleDeleteRemark removes a remark.
// POST /dashboard/{empId}/remarks/{remarkId}/delete
func (h *Handler) HandleDeleteRemark(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.formEmpID(w, r)
	if !ok {
		return
	}
	remarkID, err := strconv.Atoi(chi.URLParam(r, "remarkId"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse remarkId", err, "Invalid remark id.", profilePath(empID))
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if err := h.BMS.DeleteRemark(ctx, remarkID); err != nil {
		h.fail(w, r, "delete remark", err, profilePath(empID))
		return
	}
	h.back(w, r, empID, "remarks", 0, "Remark removed.")
}

// HandleToggleDeployable flips the candidate's deployable flag.
// POST /dashboard/{empId}/deployable
func (h *Handler) HandleToggleDeployable(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.formEmpID(w, r)
	if !ok {
		return
	}
	if !h.requireEdit(w, r, empID) {
		return
	}
	deployable := r.FormValue("deployable") == "1"

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	if _, err := h.BMS.UpdateCandidate(ctx, empID, models.CandidateUpdate{IsDeployable: &deployable}); err != nil {
		h.fail(w, r, "toggle deployable", err, profilePath(empID))
		return
	}
	h.back(w, r, empID, "", 0, "Deployable status updated.")
}

// helpers

func (h *Handler) formEmpID(w http.ResponseWriter, r *http.Request) (int, bool) {
	empID, err := strconv.Atoi(chi.URLParam(r, "empId"))
	if err != nil || empID <= 0 {
		h.ErrLog.LogBadRequest(w, r, "parse empId", err, "Invalid employee id.", "/home")
		return 0, false
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse profile form", err, "Invalid form data.", profilePath(empID))
		return 0, false
	}
	return empID, true
}

func (h *Handler) requireEdit(w http.ResponseWriter, r *http.Request, empID int) bool {
	if authz.CanEditCandidates(r) {
		return true
	}
	w.WriteHeader(http.StatusForbidden)
	uierrors.RenderForbidden(w, r, "Only admins can change candidate records.", profilePath(empID))
	return false
}

// back redirects to the profile page preserving the tab, cycle selection
// and a flash message.
func (h *Handler) back(w http.ResponseWriter, r *http.Request, empID int, tab string, cycleID int, flash string) {
	q := url.Values{}
	if tab != "" {
		q.Set("tab", tab)
	}
	if cycleID != 0 {
		q.Set("cycle", strconv.Itoa(cycleID))
	}
	if flash != "" {
		q.Set("flash", flash)
	}
	dest := profilePath(empID)
	if enc := q.Encode(); enc != "" {
		dest += "?" + enc
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
