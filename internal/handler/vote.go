package handler

import (
	"net/http"

	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/voting"
)

// SubmitVoteRequest is a voter's answer and prediction for today's question
type SubmitVoteRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid"`
	Choice     string `json:"choice" validate:"required,option"`
	Prediction string `json:"prediction" validate:"required,option"`
}

// HandleSubmitVote records a vote and advances the voter's streak
// @Summary Submit vote
// @Tags votes
// @Accept json
// @Produce json
// @Param X-Voter-ID header string true "Voter identity"
// @Param request body SubmitVoteRequest true "Vote"
// @Success 201 {object} domain.VoteReceipt
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/votes [post]
func HandleSubmitVote(svc voting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		voterID, ok := GetVoterID(r, w)
		if !ok {
			return
		}

		var req SubmitVoteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit vote"); err != nil {
			return
		}

		log := logger.FromContext(r.Context())
		LogRequestFields(log, logger.AttrKeyVoterID, voterID, logger.AttrKeyQuestionID, req.QuestionID)

		receipt, err := svc.SubmitVote(r.Context(), voting.VoteRequest{
			VoterID:    voterID,
			QuestionID: req.QuestionID,
			Choice:     req.Choice,
			Prediction: req.Prediction,
		})
		if err != nil {
			respondServiceError(w, r, "Submit vote", err)
			return
		}

		log.Info(LogMsgVoteAccepted,
			logger.AttrKeyVoterID, voterID,
			logger.AttrKeyQuestionID, receipt.Vote.QuestionID,
			"streak", receipt.Streak.CurrentStreak)
		respondJSON(w, http.StatusCreated, receipt)
	}
}
