// internal/app/features/profile/view.go
package profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/amanguptabounteous/benchboard/internal/app/system/authz"
	"github.com/amanguptabounteous/benchboard/internal/app/system/htmlsanitize"
	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/app/system/viewdata"
	"github.com/amanguptabounteous/benchboard/internal/bms"
	"github.com/amanguptabounteous/benchboard/internal/domain/bench"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// feedbackVM is one mentor-feedback entry prepared for display: the free
// text run through the pattern parser and sanitized.
type feedbackVM struct {
	FeedbackID  int
	TrainerName string
	Date        string
	Text        string
}

type topicAvg struct {
	Topic   string
	Average float64
	Count   int
}

type profileData struct {
	viewdata.BaseVM
	Candidate models.Candidate
	Tab       string

	Cycles        []models.InterviewCycle
	SelectedCycle int
	Rounds        []models.InterviewRound

	Feedback []feedbackVM
	Scores   []models.AssessmentScore
	ByTopic  []topicAvg
	Remarks  []models.Remark

	// Per-slice load failures, shown inline in the owning tab. The page
	// renders whatever did load.
	CyclesErr   string
	RoundsErr   string
	FeedbackErr string
	ScoresErr   string
	RemarksErr  string

	CanEdit     bool
	CanFeedback bool
	Flash       string
}

// ServeProfile renders one candidate's dashboard. The independent data
// slices are fetched concurrently. A failed candidate fetch (or any 401)
// aborts the page; any other slice failure degrades to an inline message
// in its tab so the rest of the page still renders.
// GET /dashboard/{empId}
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(chi.URLParam(r, "empId"))
	if err != nil || empID <= 0 {
		h.ErrLog.LogBadRequest(w, r, "parse empId", err, "Invalid employee id.", "/home")
		return
	}

	tab := r.URL.Query().Get("tab")
	switch tab {
	case "interviews", "training", "assessments", "remarks":
	default:
		tab = "interviews"
	}
	selectedCycle, _ := strconv.Atoi(r.URL.Query().Get("cycle"))

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	var (
		candidate models.Candidate
		cycles    []models.InterviewCycle
		feedback  []models.MentorFeedback
		scores    []models.AssessmentScore
		remarks   []models.Remark

		cyclesErr, feedbackErr, scoresErr, remarksErr error
	)

	// Only the candidate fetch propagates its error into the group; the
	// secondary slices record theirs and degrade.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidate, err = h.BMS.Candidate(gctx, empID)
		return err
	})
	g.Go(func() error {
		cycles, cyclesErr = h.BMS.InterviewCycles(gctx, empID)
		return authOnly(cyclesErr)
	})
	g.Go(func() error {
		feedback, feedbackErr = h.BMS.MentorFeedback(gctx, empID)
		return authOnly(feedbackErr)
	})
	g.Go(func() error {
		scores, scoresErr = h.BMS.ScoresByEmp(gctx, empID)
		return authOnly(scoresErr)
	})
	g.Go(func() error {
		remarks, remarksErr = h.BMS.Remarks(gctx, empID)
		return authOnly(remarksErr)
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, "fetch profile", err, "/home")
		return
	}

	// Rounds depend on the selected cycle, so they load after the cycles.
	var rounds []models.InterviewRound
	var roundsErr error
	if selectedCycle == 0 && len(cycles) > 0 {
		selectedCycle = cycles[0].CycleID
	}
	if selectedCycle != 0 && cycleExists(cycles, selectedCycle) {
		rounds, roundsErr = h.BMS.CycleRounds(ctx, selectedCycle)
		if errors.Is(roundsErr, bms.ErrUnauthorized) {
			h.SessionMgr.ExpireAndRedirect(w, r)
			return
		}
	} else {
		selectedCycle = 0
	}

	templates.Render(w, r, "profile", profileData{
		BaseVM:    viewdata.NewBaseVM(r, candidate.Name, "/home"),
		Candidate: candidate,
		Tab:       tab,

		Cycles:        cycles,
		SelectedCycle: selectedCycle,
		Rounds:        rounds,

		Feedback: feedbackViews(feedback),
		Scores:   scores,
		ByTopic:  topicAverages(scores),
		Remarks:  remarks,

		CyclesErr:   h.sliceNotice(r, "fetch interview cycles", cyclesErr),
		RoundsErr:   h.sliceNotice(r, "fetch cycle rounds", roundsErr),
		FeedbackErr: h.sliceNotice(r, "fetch mentor feedback", feedbackErr),
		ScoresErr:   h.sliceNotice(r, "fetch assessment scores", scoresErr),
		RemarksErr:  h.sliceNotice(r, "fetch remarks", remarksErr),

		CanEdit:     authz.CanEditCandidates(r),
		CanFeedback: authz.CanLeaveFeedback(r),
		Flash:       r.URL.Query().Get("flash"),
	})
}

// authOnly keeps 401s fatal for the fetch group and swallows everything
// else so sibling fetches keep running.
func authOnly(err error) error {
	if errors.Is(err, bms.ErrUnauthorized) {
		return err
	}
	return nil
}

// sliceNotice logs a failed secondary fetch and returns the inline message
// for its tab. Empty when the slice loaded fine.
func (h *Handler) sliceNotice(r *http.Request, what string, err error) string {
	if err == nil {
		return ""
	}
	h.Log.Warn(what+" failed", zap.String("path", r.URL.Path), zap.Error(err))
	return "This section could not be loaded right now."
}

func cycleExists(cycles []models.InterviewCycle, id int) bool {
	for _, c := range cycles {
		if c.CycleID == id {
			return true
		}
	}
	return false
}

// feedbackViews runs each entry through the free-text parser so dated
// entries show their date column even when the BMS date field is empty.
func feedbackViews(list []models.MentorFeedback) []feedbackVM {
	out := make([]feedbackVM, 0, len(list))
	for _, f := range list {
		entry := bench.ParseFeedback(f.Feedback)
		date := f.Date
		if entry.Date != "" {
			date = entry.Date
		}
		out = append(out, feedbackVM{
			FeedbackID:  f.FeedbackID,
			TrainerName: f.TrainerName,
			Date:        date,
			Text:        htmlsanitize.Sanitize(entry.Text),
		})
	}
	return out
}

// topicAverages folds the raw score rows into one row per topic.
func topicAverages(scores []models.AssessmentScore) []topicAvg {
	idx := map[string]int{}
	var out []topicAvg
	for _, s := range scores {
		topic := s.Topic
		if topic == "" {
			topic = "Other"
		}
		i, ok := idx[topic]
		if !ok {
			i = len(out)
			idx[topic] = i
			out = append(out, topicAvg{Topic: topic})
		}
		out[i].Average += s.EmpScore
		out[i].Count++
	}
	for i := range out {
		if out[i].Count > 0 {
			out[i].Average /= float64(out[i].Count)
		}
	}
	return out
}

func profilePath(empID int) string {
	return "/dashboard/" + strconv.Itoa(empID)
}
