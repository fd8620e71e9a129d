package handler

import (
	"net/http"

	"github.com/osse101/DailyPoll_Go/internal/leaderboard"
	"github.com/osse101/DailyPoll_Go/internal/results"
)

// HandleGetLeaderboard returns every voter with at least one graded vote
// @Summary Leaderboard
// @Tags leaderboard
// @Produce json
// @Param sort query string false "wins, accuracy or streak"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		by := leaderboard.SortBy(GetOptionalQueryParam(r, "sort", ""))
		if !by.Valid() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSort)
			return
		}

		entries, err := svc.Leaderboard(r.Context(), by)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleGetResults returns recent questions with their vote distribution
// @Summary Results
// @Tags results
// @Produce json
// @Param limit query int false "Number of questions"
// @Success 200 {array} domain.QuestionResult
// @Router /api/v1/results [get]
func HandleGetResults(svc results.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := getQueryInt(r, "limit", results.DefaultLimit)

		list, err := svc.List(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Get results", err)
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}
