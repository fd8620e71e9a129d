package handler

import (
	"net/http"

	"github.com/osse101/DailyPoll_Go/internal/leaderboard"
	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/profile"
)

// UpdateProfileRequest sets the voter's display name
type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
}

// HandleGetMe returns the calling voter's record and today's participation
// @Summary Voter record
// @Tags voters
// @Produce json
// @Param X-Voter-ID header string true "Voter identity"
// @Success 200 {object} domain.VoterRecord
// @Router /api/v1/me [get]
func HandleGetMe(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voterID, ok := GetVoterID(r, w)
		if !ok {
			return
		}

		record, err := svc.Record(r.Context(), voterID)
		if err != nil {
			respondServiceError(w, r, "Get voter record", err)
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

// HandleUpdateProfile sets the calling voter's username
// @Summary Set username
// @Tags voters
// @Accept json
// @Produce json
// @Param X-Voter-ID header string true "Voter identity"
// @Param request body UpdateProfileRequest true "Profile"
// @Success 200 {object} domain.Profile
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/me/profile [put]
func HandleUpdateProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voterID, ok := GetVoterID(r, w)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		p, err := svc.SetUsername(r.Context(), voterID, req.Username)
		if err != nil {
			respondServiceError(w, r, "Update profile", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgUsernameUpdated, logger.AttrKeyVoterID, voterID, "username", p.Username)
		respondJSON(w, http.StatusOK, p)
	}
}
