// internal/app/features/assessments/compare.go
package assessments

import (
	"net/http"
	"sort"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/app/system/viewdata"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// comparisonRow is one candidate's aggregate for the selected topic.
type comparisonRow struct {
	EmpID    int
	Name     string
	Average  float64
	Best     float64
	Attempts int
}

type compareData struct {
	viewdata.BaseVM
	Topic string
	Rows  []comparisonRow
}

// ServeCompare renders the per-topic score comparison across candidates.
// GET /assessmentcomp
func (h *Handler) ServeCompare(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))

	data := compareData{
		BaseVM: viewdata.NewBaseVM(r, "Assessment Comparison", "/home"),
		Topic:  topic,
	}

	if topic != "" {
		ctx, cancel := timeouts.WithMedium(r.Context())
		defer cancel()

		scores, err := h.BMS.ScoresByTopic(ctx, topic)
		if err != nil {
			h.fail(w, r, "fetch topic scores", err, "/assessmentcomp")
			return
		}
		data.Rows = comparisonRows(scores)
	}

	templates.Render(w, r, "assessment_compare", data)
}

// comparisonRows folds raw score rows into one row per candidate, ranked
// by average score descending.
func comparisonRows(scores []models.AssessmentScore) []comparisonRow {
	idx := map[int]int{}
	var out []comparisonRow
	for _, s := range scores {
		i, ok := idx[s.EmpID]
		if !ok {
			i = len(out)
			idx[s.EmpID] = i
			out = append(out, comparisonRow{EmpID: s.EmpID, Name: s.Name})
		}
		out[i].Average += s.EmpScore
		out[i].Attempts++
		if s.EmpScore > out[i].Best {
			out[i].Best = s.EmpScore
		}
	}
	for i := range out {
		if out[i].Attempts > 0 {
			out[i].Average /= float64(out[i].Attempts)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Average > out[j].Average })
	return out
}
