// internal/app/features/reports/page.go
package reports

import (
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/app/system/viewdata"
	"github.com/amanguptabounteous/benchboard/internal/bms"
	"github.com/amanguptabounteous/benchboard/internal/domain/models"
)

type pageData struct {
	viewdata.BaseVM
	Start      string
	End        string
	AgingLabel string
	Rows       []models.Candidate
	HasQuery   bool
	Error      string
}

// ServePage renders the date-range report form and, when a range is set,
// the matching rows.
// GET /reports
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:     viewdata.NewBaseVM(r, "Reports", "/home"),
		Start:      r.URL.Query().Get("start"),
		End:        r.URL.Query().Get("end"),
		AgingLabel: r.URL.Query().Get("aging"),
	}

	if data.Start != "" || data.End != "" {
		data.HasQuery = true
		start, end, err := reportRange(r)
		if err != nil {
			data.Error = err.Error()
			w.WriteHeader(http.StatusUnprocessableEntity)
			templates.Render(w, r, "reports", data)
			return
		}

		ctx, cancel := timeouts.WithMedium(r.Context())
		defer cancel()

		rows, err := h.fetchRange(ctx, r, start, end)
		if err != nil {
			if errors.Is(err, bms.ErrUnauthorized) {
				h.SessionMgr.ExpireAndRedirect(w, r)
				return
			}
			h.ErrLog.LogServerError(w, r, "fetch bench-end report", err,
				"Could not load the report. Please try again.", "/reports")
			return
		}
		data.Rows = rows
	}

	templates.Render(w, r, "reports", data)
}
