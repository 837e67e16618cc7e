package bench

import (
	"math"
	"testing"

	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

func TestParseAgingLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Range
		ok    bool
	}{
		{"<30", Range{Min: 0, Max: 29}, true},
		{"90+", Range{Min: 90, Max: math.MaxInt}, true},
		{"30-60", Range{Min: 30, Max: 60}, true},
		{"0-15", Range{Min: 0, Max: 15}, true},
		{" 30-60 ", Range{Min: 30, Max: 60}, true},
		{"", Range{}, false},
		{"thirty", Range{}, false},
		{"<abc", Range{}, false},
		{"60-30", Range{}, false},
		{"<0", Range{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseAgingLabel(tt.label)
			if ok != tt.ok {
				t.Fatalf("ParseAgingLabel(%q) ok = %v, want %v", tt.label, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAgingLabel(%q) = %+v, want %+v", tt.label, got, tt.want)
			}
		})
	}
}

func TestBucketByAging(t *testing.T) {
	list := []models.Candidate{
		{EmpID: 1, AgingDays: 4},
		{EmpID: 2, AgingDays: 29},
		{EmpID: 3, AgingDays: 30},
		{EmpID: 4, AgingDays: 60},
		{EmpID: 5, AgingDays: 90},
		{EmpID: 6, AgingDays: 400},
	}
	got := BucketByAging(list, []string{"<30", "30-60", "90+"})

	want := []LabelCount{{"<30", 2}, {"30-60", 2}, {"90+", 2}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBucketByAging_UnparseableLabelCountsNothing(t *testing.T) {
	list := []models.Candidate{{EmpID: 1, AgingDays: 10}}
	got := BucketByAging(list, []string{"fresh", "<30"})
	if got[0].Count != 0 {
		t.Errorf("unparseable label counted %d records", got[0].Count)
	}
	if got[1].Count != 1 {
		t.Errorf("parseable label: got %d, want 1", got[1].Count)
	}
}

func TestCountByStatus_PreservesFirstSeenOrder(t *testing.T) {
	list := []models.Candidate{
		{PersonStatus: "ONBOARDED"},
		{PersonStatus: "ON_BENCH"},
		{PersonStatus: "ONBOARDED"},
		{PersonStatus: ""},
	}
	got := CountByStatus(list)

	want := []LabelCount{{"ONBOARDED", 2}, {"ON_BENCH", 1}, {"UNKNOWN", 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCountBySkill(t *testing.T) {
	list := []models.Candidate{
		{PrimarySkill: "Java"},
		{PrimarySkill: "Java"},
		{PrimarySkill: "React"},
	}
	got := CountBySkill(list)
	if got[0].Label != "Java" || got[0].Count != 2 {
		t.Errorf("Java bucket: got %+v", got[0])
	}
	if got[1].Label != "React" || got[1].Count != 1 {
		t.Errorf("React bucket: got %+v", got[1])
	}
}
