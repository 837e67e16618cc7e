// internal/domain/bench/buckets.go
package bench

import (
	"math"
	"strconv"
	"strings"

	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// LabelCount is one chart bucket: a display label and how many records fell
// into it. Order matters to the charts, so reductions return slices rather
// than maps.
type LabelCount struct {
	Label string
	Count int
}

// CountByStatus groups candidates by PersonStatus, preserving first-seen
// label order.
func CountByStatus(list []models.Candidate) []LabelCount {
	return countBy(list, func(c models.Candidate) string { return c.PersonStatus })
}

// CountBySkill groups candidates by PrimarySkill, preserving first-seen
// label order.
func CountBySkill(list []models.Candidate) []LabelCount {
	return countBy(list, func(c models.Candidate) string { return c.PrimarySkill })
}

func countBy(list []models.Candidate, key func(models.Candidate) string) []LabelCount {
	idx := map[string]int{}
	var out []LabelCount
	for _, c := range list {
		k := key(c)
		if k == "" {
			k = "UNKNOWN"
		}
		if i, ok := idx[k]; ok {
			out[i].Count++
			continue
		}
		idx[k] = len(out)
		out = append(out, LabelCount{Label: k, Count: 1})
	}
	return out
}

// Range is an inclusive aging-day window. Max is math.MaxInt for open-ended
// buckets like "90+".
type Range struct {
	Min int
	Max int
}

// Contains reports whether days falls inside the range.
func (r Range) Contains(days int) bool {
	return days >= r.Min && days <= r.Max
}

// ParseAgingLabel recovers the numeric window encoded in a backend bucket
// label: "<30" means [0,29], "90+" means [90,∞), "30-60" means [30,60]
// inclusive. The label format is not a formal contract, so anything that
// does not match one of those three shapes returns ok=false rather than a
// guessed range.
func ParseAgingLabel(label string) (Range, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return Range{}, false
	}

	switch {
	case strings.HasPrefix(s, "<"):
		n, err := strconv.Atoi(strings.TrimSpace(s[1:]))
		if err != nil || n <= 0 {
			return Range{}, false
		}
		return Range{Min: 0, Max: n - 1}, true

	case strings.HasSuffix(s, "+"):
		n, err := strconv.Atoi(strings.TrimSpace(s[:len(s)-1]))
		if err != nil || n < 0 {
			return Range{}, false
		}
		return Range{Min: n, Max: math.MaxInt}, true

	case strings.Contains(s, "-"):
		parts := strings.SplitN(s, "-", 2)
		lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil || hi < lo {
			return Range{}, false
		}
		return Range{Min: lo, Max: hi}, true
	}

	return Range{}, false
}

// BucketByAging counts candidates into the backend-supplied labeled buckets.
// Candidates whose aging fits no parseable bucket are not counted anywhere;
// bucket order is preserved.
func BucketByAging(list []models.Candidate, labels []string) []LabelCount {
	out := make([]LabelCount, len(labels))
	ranges := make([]Range, len(labels))
	parsed := make([]bool, len(labels))
	for i, l := range labels {
		out[i] = LabelCount{Label: l}
		ranges[i], parsed[i] = ParseAgingLabel(l)
	}
	for _, c := range list {
		for i := range labels {
			if parsed[i] && ranges[i].Contains(c.AgingDays) {
				out[i].Count++
				break
			}
		}
	}
	return out
}
