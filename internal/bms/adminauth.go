// internal/bms/adminauth.go
package bms

import (
	"context"
	"net/http"
)

// LoginResult is the successful body of the admin and trainer login
// endpoints.
type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Role         string `json:"role"`
	Name         string `json:"name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin authenticates an admin against the BMS.
// POST /bms/admin/login
func (c *Client) AdminLogin(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/admin/login", nil, loginRequest{Email: email, Password: password}, &out)
	return out, err
}

// TrainerLogin authenticates a trainer against the BMS.
// POST /bms/trainer/login
func (c *Client) TrainerLogin(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/trainer/login", nil, loginRequest{Email: email, Password: password}, &out)
	return out, err
}

// RegisterInput is the admin self-registration body.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminRegister creates a new admin account. The BMS enforces its own
// eligibility rules; this side only forwards the form.
// POST /bms/admin/register
func (c *Client) AdminRegister(ctx context.Context, in RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/admin/register", nil, in, nil)
}

// AddTrainerEmail allow-lists a trainer email. Legacy endpoint: the success
// body is plain text (a confirmation message), which is returned as-is.
// POST /bms/admin/add-trainer-email
func (c *Client) AddTrainerEmail(ctx context.Context, email string) (string, error) {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.doText(ctx, http.MethodPost, "/admin/add-trainer-email", nil, body)
}

// TrainerEmails lists the allow-listed trainer emails.
// GET /bms/admin/trainer-emails
func (c *Client) TrainerEmails(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/admin/trainer-emails", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
