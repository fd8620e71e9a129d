package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/question"
)

func TestHandleGetTodayQuestion(t *testing.T) {
	t.Run("Open question", func(t *testing.T) {
		q := &domain.Question{
			ID:      uuid.New(),
			Date:    domain.NewDate(2024, 3, 1),
			Text:    "Cats or dogs?",
			OptionA: "Cats",
			OptionB: "Dogs",
		}
		mockSvc := &MockQuestionService{}
		mockSvc.On("Today", mock.Anything).Return(q, nil)

		rec := httptest.NewRecorder()
		HandleGetTodayQuestion(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/questions/today", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.Question
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, q.ID, got.ID)
		assert.Equal(t, "2024-03-01", got.Date.String())
		assert.Nil(t, got.Winner)
	})

	t.Run("Nothing authored", func(t *testing.T) {
		mockSvc := &MockQuestionService{}
		mockSvc.On("Today", mock.Anything).Return(nil, domain.ErrQuestionNotFound)

		rec := httptest.NewRecorder()
		HandleGetTodayQuestion(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/questions/today", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgQuestionNotFoundError)
	})
}

func TestHandleCreateQuestion(t *testing.T) {
	InitValidator()
	text := gofakeit.Question()

	tests := []struct {
		name           string
		body           CreateQuestionRequest
		setupMock      func(*MockQuestionService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Created",
			body: CreateQuestionRequest{Date: "2024-03-02", Text: text},
			setupMock: func(m *MockQuestionService) {
				m.On("Create", mock.Anything, question.CreateRequest{Date: "2024-03-02", Text: text}).
					Return(&domain.Question{ID: uuid.New(), Date: domain.NewDate(2024, 3, 2), Text: text, OptionA: "Yes", OptionB: "No"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"option_a":"Yes"`,
		},
		{
			name:           "Bad date",
			body:           CreateQuestionRequest{Date: "03/02/2024", Text: text},
			setupMock:      func(m *MockQuestionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgFieldDate,
		},
		{
			name:           "Text too long",
			body:           CreateQuestionRequest{Date: "2024-03-02", Text: gofakeit.LetterN(501)},
			setupMock:      func(m *MockQuestionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be at most 500 characters",
		},
		{
			name: "Date taken",
			body: CreateQuestionRequest{Date: "2024-03-02", Text: text},
			setupMock: func(m *MockQuestionService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrQuestionExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgQuestionExistsError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockQuestionService{}
			tt.setupMock(mockSvc)

			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/questions", bytes.NewReader(b))
			rec := httptest.NewRecorder()
			HandleCreateQuestion(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}
