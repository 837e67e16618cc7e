// internal/domain/bench/filter.go
package bench

import (
	"sort"
	"strconv"
	"strings"

	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// Filter is the roster selection state a user has built up on the /home page.
// An empty category set imposes no constraint on that dimension.
type Filter struct {
	Search         string
	OnlyDeployable bool
	Levels         map[string]struct{}
	Locations      map[string]struct{}
	Skills         map[string]struct{}
	SortAscending  bool
}

// NewFilter returns a Filter with all category sets allocated.
func NewFilter() Filter {
	return Filter{
		Levels:    map[string]struct{}{},
		Locations: map[string]struct{}{},
		Skills:    map[string]struct{}{},
	}
}

// ApplyFilter returns the candidates matching f, ordered by AgingDays.
//
// A candidate is included iff ALL of: the search text is empty or matches the
// name case-insensitively or is a substring of the decimal empId; the
// deployable toggle is off or the candidate is deployable; and each non-empty
// category set contains the candidate's value (OR within a category, AND
// across categories). The sort is stable: equal aging values keep their
// original relative order. The input slice is never mutated.
func ApplyFilter(list []models.Candidate, f Filter) []models.Candidate {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Candidate, 0, len(list))
	for _, c := range list {
		if search != "" {
			byName := strings.Contains(strings.ToLower(c.Name), search)
			byID := strings.Contains(strconv.Itoa(c.EmpID), search)
			if !byName && !byID {
				continue
			}
		}
		if f.OnlyDeployable && !c.IsDeployable {
			continue
		}
		if !inSet(f.Levels, c.Level) {
			continue
		}
		if !inSet(f.Locations, c.BaseLocation) {
			continue
		}
		if !inSet(f.Skills, c.PrimarySkill) {
			continue
		}
		out = append(out, c)
	}

	if f.SortAscending {
		sort.SliceStable(out, func(i, j int) bool { return out[i].AgingDays < out[j].AgingDays })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].AgingDays > out[j].AgingDays })
	}
	return out
}

// inSet reports whether v satisfies the category set: an empty set matches
// everything.
func inSet(set map[string]struct{}, v string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[v]
	return ok
}

// Options collects the distinct values of a candidate field, sorted, for
// building the multi-select filter panes.
func Options(list []models.Candidate, field func(models.Candidate) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, c := range list {
		v := field(c)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
