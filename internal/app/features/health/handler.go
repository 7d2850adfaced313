package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/codetrack/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// tracked are the collections whose sizes /health reports.
var tracked = []string{"users", "exercices", "programs", "links"}

// Handler holds dependencies needed for health checks.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a health Handler with the database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type healthResponse struct {
	Status      string           `json:"status"`
	Database    string           `json:"database"`
	Message     string           `json:"message,omitempty"`
	Error       string           `json:"error,omitempty"`
	Collections map[string]int64 `json:"collections,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "collections":{"exercices":12,...} }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{Status: "ok", Database: "connected"}

	if err := h.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	// Counts are informational; a failure here does not fail the check.
	resp.Collections = make(map[string]int64, len(tracked))
	for _, name := range tracked {
		n, err := h.DB.Collection(name).EstimatedDocumentCount(ctx)
		if err != nil {
			h.Log.Warn("health-check: count failed", zap.String("collection", name), zap.Error(err))
			continue
		}
		resp.Collections[name] = n
	}

	_ = json.NewEncoder(w).Encode(resp)
}
