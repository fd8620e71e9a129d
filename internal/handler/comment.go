package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/comment"
	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// PostCommentRequest is a new comment or a reply to ParentID
type PostCommentRequest struct {
	Content  string `json:"content" validate:"required,max=1000"`
	ParentID string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
}

// CommentHandler serves the discussion thread of a question
type CommentHandler struct {
	svc comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// HandleList returns a question's comments, oldest first
// @Summary List comments
// @Tags comments
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {array} domain.Comment
// @Router /api/v1/questions/{id}/comments [get]
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	questionID, ok := GetUUIDParam(r, w, "id")
	if !ok {
		return
	}

	comments, err := h.svc.List(r.Context(), questionID)
	if err != nil {
		respondServiceError(w, r, "List comments", err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

// HandlePost adds a comment to a question
// @Summary Post comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Question id"
// @Param X-Voter-ID header string true "Voter identity"
// @Param request body PostCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Router /api/v1/questions/{id}/comments [post]
func (h *CommentHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	questionID, ok := GetUUIDParam(r, w, "id")
	if !ok {
		return
	}
	voterID, ok := GetVoterID(r, w)
	if !ok {
		return
	}

	var req PostCommentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Post comment"); err != nil {
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != "" {
		id := uuid.MustParse(req.ParentID)
		parentID = &id
	}

	c, err := h.svc.Post(r.Context(), questionID, voterID, req.Content, parentID)
	if err != nil {
		respondServiceError(w, r, "Post comment", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgCommentPosted, "comment_id", c.ID, logger.AttrKeyQuestionID, questionID)
	respondJSON(w, http.StatusCreated, c)
}
