// internal/bms/interviews.go
package bms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// InterviewCycles lists an employee's interview cycles.
// GET /bms/interviews/{empId}/cycles-details
func (c *Client) InterviewCycles(ctx context.Context, empID int) ([]models.InterviewCycle, error) {
	var out []models.InterviewCycle
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/interviews/%d/cycles-details", empID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateInterviewCycle opens a new cycle for an employee.
// POST /bms/interviews/{empId}/cycles-details
func (c *Client) CreateInterviewCycle(ctx context.Context, empID int, in models.CycleInput) (models.InterviewCycle, error) {
	var out models.InterviewCycle
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/interviews/%d/cycles-details", empID), nil, in, &out)
	return out, err
}

// CycleRounds lists the rounds of one cycle.
// GET /bms/interviews/cycles/{cycleId}/details
func (c *Client) CycleRounds(ctx context.Context, cycleID int) ([]models.InterviewRound, error) {
	var out []models.InterviewRound
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/interviews/cycles/%d/details", cycleID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCycleRound appends a round to an existing cycle. The backend owns
// the round sequence number.
// POST /bms/interviews/cycles/{cycleId}/details
func (c *Client) CreateCycleRound(ctx context.Context, cycleID int, in models.RoundInput) (models.InterviewRound, error) {
	var out models.InterviewRound
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/interviews/cycles/%d/details", cycleID), nil, in, &out)
	return out, err
}
