package handler

import (
	"net/http"

	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/question"
)

// CreateQuestionRequest is the admin payload for authoring a question
type CreateQuestionRequest struct {
	Date    string `json:"date" validate:"required,date"`
	Text    string `json:"text" validate:"required,max=500"`
	OptionA string `json:"option_a,omitempty" validate:"max=100"`
	OptionB string `json:"option_b,omitempty" validate:"max=100"`
}

// HandleGetTodayQuestion returns the question open for voting today
// @Summary Today's question
// @Tags questions
// @Produce json
// @Success 200 {object} domain.Question
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/questions/today [get]
func HandleGetTodayQuestion(svc question.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := svc.Today(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get today's question", err)
			return
		}
		respondJSON(w, http.StatusOK, q)
	}
}

// HandleCreateQuestion authors a question for a date
// @Summary Create question
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreateQuestionRequest true "Question"
// @Success 201 {object} domain.Question
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/questions [post]
func HandleCreateQuestion(svc question.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateQuestionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create question"); err != nil {
			return
		}

		q, err := svc.Create(r.Context(), question.CreateRequest{
			Date:    req.Date,
			Text:    req.Text,
			OptionA: req.OptionA,
			OptionB: req.OptionB,
		})
		if err != nil {
			respondServiceError(w, r, "Create question", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgQuestionCreated, logger.AttrKeyQuestionID, q.ID, logger.AttrKeyDate, q.Date)
		respondJSON(w, http.StatusCreated, q)
	}
}
