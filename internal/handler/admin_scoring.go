package handler

import (
	"net/http"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/scoring"
)

// ScoreRequest names the date to score. An empty date scores yesterday in
// the poll time zone.
type ScoreRequest struct {
	Date string `json:"date,omitempty" validate:"omitempty,date"`
}

// AdminScoringHandler triggers scoring and grading runs out of schedule
type AdminScoringHandler struct {
	svc scoring.Service
	loc *time.Location
	now func() time.Time
}

// NewAdminScoringHandler creates a new admin scoring handler
func NewAdminScoringHandler(svc scoring.Service, loc *time.Location) *AdminScoringHandler {
	return &AdminScoringHandler{svc: svc, loc: loc, now: time.Now}
}

// HandleScore scores one date
// @Summary Score a date
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ScoreRequest false "Date"
// @Success 200 {object} domain.ScoreResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/admin/score [post]
func (h *AdminScoringHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Score"); err != nil {
			return
		}
	}

	date := scoring.ScoringTarget(h.now(), h.loc)
	if req.Date != "" {
		date, _ = domain.ParseDate(req.Date)
	}

	logger.FromContext(r.Context()).Info(LogMsgScoringTriggered, logger.AttrKeyDate, date)

	res, err := h.svc.Score(r.Context(), date)
	if err != nil {
		respondServiceError(w, r, "Score", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleGrade re-runs grading for a scored question
// @Summary Grade a question
// @Tags admin
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} domain.GradeResult
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/questions/{id}/grade [post]
func (h *AdminScoringHandler) HandleGrade(w http.ResponseWriter, r *http.Request) {
	questionID, ok := GetUUIDParam(r, w, "id")
	if !ok {
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgGradingTriggered, logger.AttrKeyQuestionID, questionID)

	res, err := h.svc.GradeQuestion(r.Context(), questionID)
	if err != nil {
		respondServiceError(w, r, "Grade", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
