package handler

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// ReadinessTimeout bounds the store ping of /readyz
const ReadinessTimeout = 2 * time.Second

const msgDraining = "shutting down"

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	StoreLatencyMS *int64 `json:"store_latency_ms,omitempty"`
}

// Pinger is satisfied by the Postgres pool and the in-memory store
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// Readiness answers /readyz. It is ready while the store answers a ping,
// and reports unavailable for good once Drain is called.
type Readiness struct {
	store    Pinger
	draining atomic.Bool
}

func NewReadiness(store Pinger) *Readiness {
	return &Readiness{store: store}
}

// Drain makes every later readiness check fail so load balancers stop routing here
func (rd *Readiness) Drain() {
	rd.draining.Store(true)
}

// Handler serves the readiness check
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (rd *Readiness) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rd.draining.Load() {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: msgDraining,
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		start := time.Now()
		if err := rd.store.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: ErrMsgStoreUnreachable,
			})
			return
		}
		latency := time.Since(start).Milliseconds()

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", StoreLatencyMS: &latency})
	}
}
