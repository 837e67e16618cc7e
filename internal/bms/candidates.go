// internal/bms/candidates.go
package bms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// Candidates returns the full bench roster.
// GET /bms/details
func (c *Client) Candidates(ctx context.Context) ([]models.Candidate, error) {
	var out []models.Candidate
	if err := c.do(ctx, http.MethodGet, "/details", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Candidate returns a single employee by id.
// GET /bms/details/{empId}
func (c *Client) Candidate(ctx context.Context, empID int) (models.Candidate, error) {
	var out models.Candidate
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/details/%d", empID), nil, nil, &out)
	return out, err
}

// CandidatesByBenchEndRange returns employees whose bench end date falls in
// [start, end], dates formatted YYYY-MM-DD.
// GET /bms/details/bench-end-date-range?start&end
func (c *Client) CandidatesByBenchEndRange(ctx context.Context, start, end string) ([]models.Candidate, error) {
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)
	var out []models.Candidate
	if err := c.do(ctx, http.MethodGet, "/details/bench-end-date-range", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCandidate adds a candidate via the manual-add form.
// POST /bms/candidate
func (c *Client) CreateCandidate(ctx context.Context, in models.CandidateInput) (models.Candidate, error) {
	var out models.Candidate
	err := c.do(ctx, http.MethodPost, "/candidate", nil, in, &out)
	return out, err
}

// UpdateCandidate applies a partial update to an employee.
// PATCH /bms/candidate/update/{id}
func (c *Client) UpdateCandidate(ctx context.Context, empID int, in models.CandidateUpdate) (models.Candidate, error) {
	var out models.Candidate
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/candidate/update/%d", empID), nil, in, &out)
	return out, err
}

// Remarks lists the remarks attached to an employee.
// GET /bms/remarks/{empId}
func (c *Client) Remarks(ctx context.Context, empID int) ([]models.Remark, error) {
	var out []models.Remark
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/remarks/%d", empID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddRemark attaches a free-text remark to an employee.
// POST /bms/remarks/{empId}
func (c *Client) AddRemark(ctx context.Context, empID int, text string) (models.Remark, error) {
	body := struct {
		Text string `json:"text"`
	}{Text: text}
	var out models.Remark
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/remarks/%d", empID), nil, body, &out)
	return out, err
}

// DeleteRemark removes a remark. Legacy endpoint: the success body is plain
// text, not JSON.
// DELETE /bms/remarks/{remarkId}
func (c *Client) DeleteRemark(ctx context.Context, remarkID int) error {
	_, err := c.doText(ctx, http.MethodDelete, fmt.Sprintf("/remarks/%d", remarkID), nil, nil)
	return err
}
