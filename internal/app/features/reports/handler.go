// internal/app/features/reports/handler.go
package reports

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	uierrors "github.com/amanguptabounteous/benchboard/internal/app/features/errors"
	"github.com/amanguptabounteous/benchboard/internal/app/store/audit"
	"github.com/amanguptabounteous/benchboard/internal/app/system/auth"
	"github.com/amanguptabounteous/benchboard/internal/bms"
	"github.com/amanguptabounteous/benchboard/internal/domain/bench"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

// Handler is the feature-level handler for the bench-end report (/reports).
type Handler struct {
	BMS        *bms.Client
	SessionMgr *auth.SessionManager
	Audit      *audit.Store
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(client *bms.Client, sessionMgr *auth.SessionManager, auditStore *audit.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		BMS:        client,
		SessionMgr: sessionMgr,
		Audit:      auditStore,
		Log:        logger,
		ErrLog:     errLog,
	}
}

// reportRange reads and validates the start/end query params. Both must be
// YYYY-MM-DD with start <= end.
func reportRange(r *http.Request) (start, end string, err error) {
	start = strings.TrimSpace(r.URL.Query().Get("start"))
	end = strings.TrimSpace(r.URL.Query().Get("end"))
	if start == "" || end == "" {
		return start, end, errors.New("both start and end dates are required")
	}
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return start, end, errors.New("start date must be YYYY-MM-DD")
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return start, end, errors.New("end date must be YYYY-MM-DD")
	}
	if e.Before(s) {
		return start, end, errors.New("end date must not be before start date")
	}
	return start, end, nil
}

// fetchRange loads the report rows, applying the optional aging-label
// filter. An unparseable label selects nothing rather than everything.
func (h *Handler) fetchRange(ctx context.Context, r *http.Request, start, end string) ([]models.Candidate, error) {
	rows, err := h.BMS.CandidatesByBenchEndRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(r.URL.Query().Get("aging"))
	if label == "" {
		return rows, nil
	}
	rng, ok := bench.ParseAgingLabel(label)
	if !ok {
		h.Log.Warn("unparseable aging label", zap.String("label", label))
		return nil, nil
	}
	var out []models.Candidate
	for _, c := range rows {
		if rng.Contains(c.AgingDays) {
			out = append(out, c)
		}
	}
	return out, nil
}
