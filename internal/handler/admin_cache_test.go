package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DailyPoll_Go/internal/cache"
)

type fixedStats cache.Stats

func (f fixedStats) GetStats() cache.Stats { return cache.Stats(f) }

func TestAdminCacheHandler_HandleGetCacheStats(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		h := NewAdminCacheHandler(fixedStats{Hits: 9, Misses: 1, Size: 4})

		rec := httptest.NewRecorder()
		h.HandleGetCacheStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/cache/stats", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"enabled":true,"hits":9,"misses":1,"size":4}`, rec.Body.String())
	})

	t.Run("Disabled", func(t *testing.T) {
		h := NewAdminCacheHandler(nil)

		rec := httptest.NewRecorder()
		h.HandleGetCacheStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/cache/stats", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"enabled":false,"hits":0,"misses":0,"size":0}`, rec.Body.String())
	})
}
