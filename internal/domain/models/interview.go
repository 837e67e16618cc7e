// internal/domain/models/interview.go
package models

// InterviewCycle is a named sequence of interview rounds for a candidate
// against a specific client/role.
type InterviewCycle struct {
	CycleID int    `json:"cycleId"`
	EmpID   int    `json:"empId"`
	Client  string `json:"client"`
	Title   string `json:"title"`
}

// InterviewRound is a single stage within a cycle. A round always belongs
// to an existing cycle; the UI requires a cycle selection before a round
// can be submitted.
type InterviewRound struct {
	Round            int    `json:"round"`
	CycleID          int    `json:"cycleId"`
	Date             string `json:"date"` // YYYY-MM-DD
	Panel            string `json:"panel"`
	Status           string `json:"status"`   // PENDING | PASSED | FAILED | SUCCESS
	Feedback         string `json:"feedback"` // POSITIVE | NEGATIVE
	DetailedFeedback string `json:"detailedFeedback,omitempty"`
}

// CycleInput creates a new interview cycle.
type CycleInput struct {
	Client string `json:"client"`
	Title  string `json:"title"`
}

// RoundInput creates a new round within a cycle.
type RoundInput struct {
	Date             string `json:"date"`
	Panel            string `json:"panel"`
	Status           string `json:"status"`
	Feedback         string `json:"feedback"`
	DetailedFeedback string `json:"detailedFeedback,omitempty"`
}
