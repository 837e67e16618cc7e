// internal/bms/feedback.go
package bms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// MentorFeedback lists mentor feedback for an employee.
// GET /bms/mentor-feedback/{empId}
func (c *Client) MentorFeedback(ctx context.Context, empID int) ([]models.MentorFeedback, error) {
	var out []models.MentorFeedback
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/mentor-feedback/%d", empID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMentorFeedback adds a mentor feedback entry for an employee.
// POST /bms/mentor-feedback/{empId}
func (c *Client) CreateMentorFeedback(ctx context.Context, empID int, in models.MentorFeedbackInput) (models.MentorFeedback, error) {
	var out models.MentorFeedback
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/mentor-feedback/%d", empID), nil, in, &out)
	return out, err
}

// UpdateMentorFeedback replaces an existing feedback entry.
// PUT /bms/mentor-feedback/{feedbackId}
func (c *Client) UpdateMentorFeedback(ctx context.Context, feedbackID int, in models.MentorFeedbackInput) (models.MentorFeedback, error) {
	var out models.MentorFeedback
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/mentor-feedback/%d", feedbackID), nil, in, &out)
	return out, err
}

// DeleteMentorFeedback removes a feedback entry.
// DELETE /bms/mentor-feedback/{feedbackId}
func (c *Client) DeleteMentorFeedback(ctx context.Context, feedbackID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/mentor-feedback/%d", feedbackID), nil, nil, nil)
}

// ScoresByEmp returns assessment scores for one employee.
// GET /bms/scores/filter?empId=
func (c *Client) ScoresByEmp(ctx context.Context, empID int) ([]models.AssessmentScore, error) {
	q := url.Values{}
	q.Set("empId", strconv.Itoa(empID))
	var out []models.AssessmentScore
	if err := c.do(ctx, http.MethodGet, "/scores/filter", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ScoresByTopic returns all candidates' scores for one topic.
// GET /bms/scores/filter?topic=
func (c *Client) ScoresByTopic(ctx context.Context, topic string) ([]models.AssessmentScore, error) {
	q := url.Values{}
	q.Set("topic", topic)
	var out []models.AssessmentScore
	if err := c.do(ctx, http.MethodGet, "/scores/filter", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignAssessment schedules an assessment for the given employees.
// POST /bms/assessments/assign
func (c *Client) AssignAssessment(ctx context.Context, in models.AssessmentAssignment) error {
	return c.do(ctx, http.MethodPost, "/assessments/assign", nil, in, nil)
}
