package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"duplicate vote", domain.ErrDuplicateVote, http.StatusConflict, ErrMsgAlreadyVotedError},
		{"wrapped duplicate vote", fmt.Errorf("failed to insert vote: %w", domain.ErrDuplicateVote), http.StatusConflict, ErrMsgAlreadyVotedError},
		{"voting closed", domain.ErrVotingClosed, http.StatusConflict, ErrMsgVotingClosedError},
		{"question not found", fmt.Errorf("%w: 2024-03-01", domain.ErrQuestionNotFound), http.StatusNotFound, ErrMsgQuestionNotFoundError},
		{"invalid option", domain.ErrInvalidOption, http.StatusBadRequest, ErrMsgInvalidOptionError},
		{"invalid date", domain.ErrInvalidDate, http.StatusBadRequest, ErrMsgInvalidDateError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"profile incomplete", domain.ErrProfileIncomplete, http.StatusForbidden, ErrMsgProfileIncompleteError},
		{"question exists", domain.ErrQuestionExists, http.StatusConflict, ErrMsgQuestionExistsError},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, ErrMsgUsernameTakenError},
		{"comment parent", domain.ErrCommentParent, http.StatusBadRequest, ErrMsgCommentParentError},
		{"already scored", domain.ErrAlreadyScored, http.StatusConflict, ErrMsgAlreadyScoredError},
		{"no votes", domain.ErrNoVotesRecorded, http.StatusUnprocessableEntity, ErrMsgNoVotesRecordedError},
		{"winner not set", domain.ErrWinnerNotSet, http.StatusConflict, ErrMsgWinnerNotSetError},
		{"partial grading", &domain.PartialGradingError{}, http.StatusInternalServerError, ErrMsgPartialGradingError},
		{"store unavailable", fmt.Errorf("ping: %w", domain.ErrStoreUnavailable), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"unknown error stays generic", errors.New("pq: relation \"votes\" does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	t.Run("Encodes payload", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondJSON(rec, http.StatusAccepted, SuccessResponse{Message: "ok"})

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, `{"message":"ok"}`+"\n", rec.Body.String())
	})

	t.Run("Unencodable payload", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondJSON(rec, http.StatusOK, map[string]interface{}{"ch": make(chan int)})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
