// internal/domain/models/assessment.go
package models

// AssessmentScore is a per-candidate score row, read-only on this side and
// used purely for chart/table display.
type AssessmentScore struct {
	AssessmentID int     `json:"assessmentId"`
	EmpID        int     `json:"empId"`
	Name         string  `json:"name"`
	Topic        string  `json:"topic"`
	SubtopicName string  `json:"subtopic_name,omitempty"`
	Marks        float64 `json:"marks"`
	EmpScore     float64 `json:"empScore"`
	AverageMarks float64 `json:"average_marks"`
	TotalScore   float64 `json:"totalScore"`
}

// AssessmentAssignment schedules an assessment for a set of employees.
type AssessmentAssignment struct {
	Topic  string `json:"topic"`
	Date   string `json:"date"` // YYYY-MM-DD
	Link   string `json:"link,omitempty"`
	EmpIDs []int  `json:"empIds"`
}

// TopPerformer is one leaderboard row from the analytics endpoints.
type TopPerformer struct {
	EmpID int     `json:"empId"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Topic string  `json:"topic,omitempty"`
}

// AgingBucket is one labeled count from the aging-analysis endpoint.
// The label encodes the range (e.g. "<30", "30-60", "90+"); the backend is
// the authority on bucket edges.
type AgingBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// StatusCount is one slice of the status-distribution chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TrendPoint is one point of the daily/monthly bench-status trend.
type TrendPoint struct {
	Period  string `json:"period"` // YYYY-MM-DD or YYYY-MM
	OnBench int    `json:"onBench"`
	Left    int    `json:"leftBench"`
}

// TopicReport is one row of the skill-gap report (per main topic or topic).
type TopicReport struct {
	Topic        string  `json:"topic"`
	AverageScore float64 `json:"averageScore"`
	Attempts     int     `json:"attempts"`
}
