package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/voting"
)

func newVoteRequest(t *testing.T, voterID string, body interface{}) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewReader(b))
	if voterID != "" {
		req.Header.Set(HeaderVoterID, voterID)
	}
	return req
}

func TestHandleSubmitVote(t *testing.T) {
	InitValidator()
	questionID := uuid.New()
	valid := SubmitVoteRequest{QuestionID: questionID.String(), Choice: "A", Prediction: "B"}

	tests := []struct {
		name           string
		voterID        string
		body           interface{}
		setupMock      func(*MockVotingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Accepted",
			voterID: "voter-1",
			body:    valid,
			setupMock: func(m *MockVotingService) {
				m.On("SubmitVote", mock.Anything, voting.VoteRequest{
					VoterID: "voter-1", QuestionID: questionID.String(), Choice: "A", Prediction: "B",
				}).Return(&domain.VoteReceipt{
					Vote:   domain.Vote{QuestionID: questionID, VoterID: "voter-1", Choice: domain.OptionA, Prediction: domain.OptionB},
					Streak: domain.StreakState{VoterID: "voter-1", CurrentStreak: 3, LongestStreak: 3},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"current_streak":3`,
		},
		{
			name:           "Missing voter id",
			body:           valid,
			setupMock:      func(m *MockVotingService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgMissingVoterID,
		},
		{
			name:           "Invalid choice",
			voterID:        "voter-1",
			body:           SubmitVoteRequest{QuestionID: questionID.String(), Choice: "maybe", Prediction: "A"},
			setupMock:      func(m *MockVotingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgFieldOption,
		},
		{
			name:           "Malformed question id",
			voterID:        "voter-1",
			body:           SubmitVoteRequest{QuestionID: "nope", Choice: "A", Prediction: "A"},
			setupMock:      func(m *MockVotingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgFieldUUID,
		},
		{
			name:           "Malformed JSON",
			voterID:        "voter-1",
			body:           "not an object",
			setupMock:      func(m *MockVotingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:    "Duplicate vote",
			voterID: "voter-1",
			body:    valid,
			setupMock: func(m *MockVotingService) {
				m.On("SubmitVote", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("failed to insert vote: %w", domain.ErrDuplicateVote))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyVotedError,
		},
		{
			name:    "Voting closed",
			voterID: "voter-1",
			body:    valid,
			setupMock: func(m *MockVotingService) {
				m.On("SubmitVote", mock.Anything, mock.Anything).Return(nil, domain.ErrVotingClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgVotingClosedError,
		},
		{
			name:    "Profile incomplete",
			voterID: "voter-1",
			body:    valid,
			setupMock: func(m *MockVotingService) {
				m.On("SubmitVote", mock.Anything, mock.Anything).Return(nil, domain.ErrProfileIncomplete)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgProfileIncompleteError,
		},
		{
			name:    "Store unavailable",
			voterID: "voter-1",
			body:    valid,
			setupMock: func(m *MockVotingService) {
				m.On("SubmitVote", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("failed to begin vote transaction: %w", domain.ErrStoreUnavailable))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockVotingService{}
			tt.setupMock(mockSvc)

			rec := httptest.NewRecorder()
			HandleSubmitVote(mockSvc).ServeHTTP(rec, newVoteRequest(t, tt.voterID, tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}
