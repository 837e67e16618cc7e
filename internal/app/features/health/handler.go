// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Mongo *mongo.Client
	BMS   *bms.Client
	Log   *zap.Logger
}

func NewHandler(mongoClient *mongo.Client, bmsClient *bms.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Mongo: mongoClient,
		BMS:   bmsClient,
		Log:   logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Upstream string `json:"upstream"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health. Reports the Mongo connection (audit store)
// and BMS reachability. Mongo is optional at runtime, so only an
// unreachable BMS makes the check fail.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := healthResponse{Status: "ok", Database: "disabled", Upstream: "connected"}
	code := http.StatusOK

	if h.Mongo != nil {
		if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Warn("health: mongo ping failed", zap.Error(err))
			resp.Database = "unreachable"
		} else {
			resp.Database = "connected"
		}
	}

	if err := h.BMS.Ping(ctx); err != nil {
		h.Log.Warn("health: bms unreachable", zap.Error(err))
		resp.Status = "error"
		resp.Upstream = "unreachable"
		resp.Error = err.Error()
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
