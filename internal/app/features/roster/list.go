// internal/app/features/roster/list.go
package roster

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/system/authz"
	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/app/system/viewdata"
	"github.com/amanguptabounteous/benchboard/internal/bms"
	"github.com/amanguptabounteous/benchboard/internal/domain/bench"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// agingShelves are the summary-strip buckets, matching the shape the
// analytics charts use for aging labels.
var agingShelves = []string{"<30", "30-60", "61-90", "90+"}

type listData struct {
	viewdata.BaseVM
	Candidates []models.Candidate
	Total      int
	Shown      int

	// Summary strip over the filtered rows.
	ByStatus []bench.LabelCount
	ByAging  []bench.LabelCount
	BySkill  []bench.LabelCount

	Search         string
	OnlyDeployable bool
	SortAscending  bool

	LevelOptions    []string
	LocationOptions []string
	SkillOptions    []string
	Levels          map[string]bool
	Locations       map[string]bool
	Skills          map[string]bool

	CanEdit bool
	Flash   string
}

// filterFromQuery rebuilds the roster filter from the page's query string,
// so filter state survives reloads and is shareable as a URL.
func filterFromQuery(r *http.Request) bench.Filter {
	q := r.URL.Query()
	f := bench.NewFilter()
	f.Search = strings.TrimSpace(q.Get("search"))
	f.OnlyDeployable = q.Get("deployable") == "1"
	f.SortAscending = q.Get("sort") == "asc"
	for _, v := range q["level"] {
		if v != "" {
			f.Levels[v] = struct{}{}
		}
	}
	for _, v := range q["location"] {
		if v != "" {
			f.Locations[v] = struct{}{}
		}
	}
	for _, v := range q["skill"] {
		if v != "" {
			f.Skills[v] = struct{}{}
		}
	}
	return f
}

// checked converts a filter set into the map the template tests against
// when marking selected options.
func checked(set map[string]struct{}) map[string]bool {
	out := make(map[string]bool, len(set))
	for v := range set {
		out[v] = true
	}
	return out
}

// ServeList renders the bench roster with the filter panel applied.
// GET /home
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	all, err := h.BMS.Candidates(ctx)
	if err != nil {
		if errors.Is(err, bms.ErrUnauthorized) {
			h.SessionMgr.ExpireAndRedirect(w, r)
			return
		}
		h.ErrLog.LogServerError(w, r, "fetch candidates", err,
			"Could not load the bench roster. Please try again.", "/home")
		return
	}

	f := filterFromQuery(r)
	filtered := bench.ApplyFilter(all, f)

	role, _, _ := authz.UserCtx(r)
	h.Log.Debug("roster list",
		zap.String("role", role),
		zap.Int("total", len(all)),
		zap.Int("shown", len(filtered)))

	templates.Render(w, r, "roster_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Bench", "/home"),
		Candidates: filtered,
		Total:      len(all),
		Shown:      len(filtered),

		ByStatus: bench.CountByStatus(filtered),
		ByAging:  bench.BucketByAging(filtered, agingShelves),
		BySkill:  bench.CountBySkill(filtered),

		Search:         f.Search,
		OnlyDeployable: f.OnlyDeployable,
		SortAscending:  f.SortAscending,

		LevelOptions:    bench.Options(all, func(c models.Candidate) string { return c.Level }),
		LocationOptions: bench.Options(all, func(c models.Candidate) string { return c.BaseLocation }),
		SkillOptions:    bench.Options(all, func(c models.Candidate) string { return c.PrimarySkill }),
		Levels:          checked(f.Levels),
		Locations:       checked(f.Locations),
		Skills:          checked(f.Skills),

		CanEdit: authz.CanEditCandidates(r),
		Flash:   r.URL.Query().Get("flash"),
	})
}
