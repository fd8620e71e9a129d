package handler

import (
	"net/http"

	"github.com/osse101/DailyPoll_Go/internal/cache"
)

// CacheStatsProvider is implemented by cache.QuestionCache
type CacheStatsProvider interface {
	GetStats() cache.Stats
}

// CacheStatsResponse reports whether the question cache is on and how it performs
type CacheStatsResponse struct {
	Enabled bool `json:"enabled"`
	cache.Stats
}

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	stats CacheStatsProvider
}

// NewAdminCacheHandler creates a new admin cache handler. stats may be nil
// when the question cache is disabled.
func NewAdminCacheHandler(stats CacheStatsProvider) *AdminCacheHandler {
	return &AdminCacheHandler{stats: stats}
}

// HandleGetCacheStats returns current question cache statistics
// @Summary Get question cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} CacheStatsResponse
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		respondJSON(w, http.StatusOK, CacheStatsResponse{})
		return
	}
	respondJSON(w, http.StatusOK, CacheStatsResponse{Enabled: true, Stats: h.stats.GetStats()})
}
