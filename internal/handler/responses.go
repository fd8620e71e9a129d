package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes its user-facing mapping
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceError, opName), "error", err, "status", status)
	} else {
		log.Warn(fmt.Sprintf(LogMsgServiceError, opName), "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgQuestionNotFoundError  = "No question found for that day"
	ErrMsgAlreadyVotedError      = "You have already voted"
	ErrMsgVotingClosedError      = "Voting is closed for this question"
	ErrMsgInvalidOptionError     = "Choose one of the two options"
	ErrMsgInvalidDateError       = "Dates must use the YYYY-MM-DD format"
	ErrMsgProfileIncompleteError = "Pick a username before voting"
	ErrMsgQuestionExistsError    = "A question already exists for that day"
	ErrMsgUsernameTakenError     = "That username is already taken"
	ErrMsgCommentParentError     = "The comment you replied to does not exist"
	ErrMsgAlreadyScoredError     = "That question has already been scored"
	ErrMsgNoVotesRecordedError   = "No votes were recorded for that question"
	ErrMsgWinnerNotSetError      = "That question has not been scored yet"
	ErrMsgPartialGradingError    = "Some votes could not be graded. Retry grading."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrDuplicateVote):
		return http.StatusConflict, ErrMsgAlreadyVotedError
	case errors.Is(err, domain.ErrVotingClosed):
		return http.StatusConflict, ErrMsgVotingClosedError
	case errors.Is(err, domain.ErrQuestionNotFound):
		return http.StatusNotFound, ErrMsgQuestionNotFoundError
	case errors.Is(err, domain.ErrInvalidOption):
		return http.StatusBadRequest, ErrMsgInvalidOptionError
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, ErrMsgInvalidDateError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrProfileIncomplete):
		return http.StatusForbidden, ErrMsgProfileIncompleteError
	case errors.Is(err, domain.ErrQuestionExists):
		return http.StatusConflict, ErrMsgQuestionExistsError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrCommentParent):
		return http.StatusBadRequest, ErrMsgCommentParentError
	case errors.Is(err, domain.ErrPartialGrading):
		// checked first so a partial run is never reported as a conflict
		return http.StatusInternalServerError, ErrMsgPartialGradingError
	case errors.Is(err, domain.ErrAlreadyScored):
		return http.StatusConflict, ErrMsgAlreadyScoredError
	case errors.Is(err, domain.ErrNoVotesRecorded):
		return http.StatusUnprocessableEntity, ErrMsgNoVotesRecordedError
	case errors.Is(err, domain.ErrWinnerNotSet):
		return http.StatusConflict, ErrMsgWinnerNotSetError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
