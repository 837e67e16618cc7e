// internal/domain/models/feedback.go
package models

// MentorFeedback is free-text commentary left by a trainer/mentor about a
// candidate's progress. The BMS serves these fields in snake_case.
type MentorFeedback struct {
	FeedbackID  int    `json:"mentor_feedback_id"`
	EmpID       int    `json:"empId"`
	Feedback    string `json:"mentor_feedback"`
	Date        string `json:"date"` // YYYY-MM-DD
	TrainerName string `json:"trainer_name"`
}

// MentorFeedbackInput creates or replaces a mentor feedback entry.
type MentorFeedbackInput struct {
	Feedback    string `json:"mentor_feedback"`
	Date        string `json:"date"`
	TrainerName string `json:"trainer_name"`
}
