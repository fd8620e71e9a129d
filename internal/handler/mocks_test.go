package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/leaderboard"
	"github.com/osse101/DailyPoll_Go/internal/question"
	"github.com/osse101/DailyPoll_Go/internal/voting"
)

// MockVotingService mocks the voting.Service interface
type MockVotingService struct {
	mock.Mock
}

func (m *MockVotingService) SubmitVote(ctx context.Context, req voting.VoteRequest) (*domain.VoteReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoteReceipt), args.Error(1)
}

// MockScoringService mocks the scoring.Service interface
type MockScoringService struct {
	mock.Mock
}

func (m *MockScoringService) Score(ctx context.Context, date domain.Date) (*domain.ScoreResult, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoreResult), args.Error(1)
}

func (m *MockScoringService) GradeQuestion(ctx context.Context, questionID uuid.UUID) (*domain.GradeResult, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GradeResult), args.Error(1)
}

// MockQuestionService mocks the question.Service interface
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Create(ctx context.Context, req question.CreateRequest) (*domain.Question, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionService) Today(ctx context.Context) (*domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionService) GetByDate(ctx context.Context, date domain.Date) (*domain.Question, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionService) ImportFile(ctx context.Context, path string) (*question.ImportResult, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*question.ImportResult), args.Error(1)
}

// MockLeaderboardService mocks the leaderboard.Service interface
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Leaderboard(ctx context.Context, by leaderboard.SortBy) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardService) Record(ctx context.Context, voterID string) (*domain.VoterRecord, error) {
	args := m.Called(ctx, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoterRecord), args.Error(1)
}

// MockResultsService mocks the results.Service interface
type MockResultsService struct {
	mock.Mock
}

func (m *MockResultsService) List(ctx context.Context, limit int) ([]domain.QuestionResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestionResult), args.Error(1)
}

// MockProfileService mocks the profile.Service interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, voterID string) (*domain.Profile, error) {
	args := m.Called(ctx, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) SetUsername(ctx context.Context, voterID, username string) (*domain.Profile, error) {
	args := m.Called(ctx, voterID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// MockCommentService mocks the comment.Service interface
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Post(ctx context.Context, questionID uuid.UUID, voterID, content string, parentID *uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, questionID, voterID, content, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) List(ctx context.Context, questionID uuid.UUID) ([]domain.Comment, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}
