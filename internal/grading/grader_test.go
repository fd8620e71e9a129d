package grading

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyPoll_Go/internal/database/memory"
	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// MockVoteRepository
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) ListVotes(ctx context.Context, questionID uuid.UUID) ([]domain.Vote, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vote), args.Error(1)
}

func (m *MockVoteRepository) InsertVote(ctx context.Context, vote *domain.Vote) error {
	return m.Called(ctx, vote).Error(0)
}

func (m *MockVoteRepository) SetCorrectness(ctx context.Context, voteID uuid.UUID, correct bool) error {
	return m.Called(ctx, voteID, correct).Error(0)
}

func (m *MockVoteRepository) CountVotes(ctx context.Context, questionID uuid.UUID) (domain.Tally, error) {
	args := m.Called(ctx, questionID)
	return args.Get(0).(domain.Tally), args.Error(1)
}

func (m *MockVoteRepository) ListGradedVotes(ctx context.Context) ([]domain.Vote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vote), args.Error(1)
}

func (m *MockVoteRepository) GetVote(ctx context.Context, voterID string, questionID uuid.UUID) (*domain.Vote, error) {
	args := m.Called(ctx, voterID, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vote), args.Error(1)
}

func (m *MockVoteRepository) ListVotesByVoter(ctx context.Context, voterID string) ([]domain.Vote, error) {
	args := m.Called(ctx, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vote), args.Error(1)
}

func (m *MockVoteRepository) BeginVoteTx(ctx context.Context) (repository.VoteTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.VoteTx), args.Error(1)
}

func scoredQuestion(winner domain.Option) *domain.Question {
	return &domain.Question{ID: uuid.New(), Date: domain.NewDate(2024, time.May, 1), Winner: &winner}
}

func TestGrade_UnscoredQuestion(t *testing.T) {
	g := NewGrader(new(MockVoteRepository))

	_, err := g.Grade(context.Background(), &domain.Question{ID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrWinnerNotSet)
}

func TestGrade_MarksPredictionAgainstWinner(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	q := &domain.Question{Date: domain.NewDate(2024, time.May, 1), Text: "Cats or dogs?"}
	require.NoError(t, store.CreateQuestion(ctx, q))

	right := &domain.Vote{VoterID: "alice", QuestionID: q.ID, Choice: domain.OptionA, Prediction: domain.OptionB}
	wrong := &domain.Vote{VoterID: "bob", QuestionID: q.ID, Choice: domain.OptionB, Prediction: domain.OptionA}
	require.NoError(t, store.InsertVote(ctx, right))
	require.NoError(t, store.InsertVote(ctx, wrong))
	require.NoError(t, store.SetWinner(ctx, q.ID, domain.OptionB))

	q, err := store.GetQuestionByID(ctx, q.ID)
	require.NoError(t, err)

	res, err := NewGrader(store).Grade(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Graded)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 1, res.Incorrect)
	assert.Empty(t, res.Ungraded)

	got, err := store.GetVote(ctx, "alice", q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Correct)
	assert.True(t, *got.Correct)

	got, err = store.GetVote(ctx, "bob", q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Correct)
	assert.False(t, *got.Correct)
}

func TestGrade_RepeatRunIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	q := &domain.Question{Date: domain.NewDate(2024, time.May, 1)}
	require.NoError(t, store.CreateQuestion(ctx, q))
	require.NoError(t, store.InsertVote(ctx, &domain.Vote{VoterID: "alice", QuestionID: q.ID, Choice: domain.OptionA, Prediction: domain.OptionA}))
	require.NoError(t, store.SetWinner(ctx, q.ID, domain.OptionA))
	q, _ = store.GetQuestionByID(ctx, q.ID)

	g := NewGrader(store)
	_, err := g.Grade(ctx, q)
	require.NoError(t, err)

	res, err := g.Grade(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Graded)
	assert.Equal(t, 1, res.Skipped)
}

func TestGrade_PartialFailureContinues(t *testing.T) {
	ctx := context.Background()
	q := scoredQuestion(domain.OptionA)
	votes := []domain.Vote{
		{ID: uuid.New(), VoterID: "v1", QuestionID: q.ID, Prediction: domain.OptionA},
		{ID: uuid.New(), VoterID: "v2", QuestionID: q.ID, Prediction: domain.OptionB},
		{ID: uuid.New(), VoterID: "v3", QuestionID: q.ID, Prediction: domain.OptionA},
	}
	cause := errors.New("connection reset")

	repo := new(MockVoteRepository)
	repo.On("ListVotes", ctx, q.ID).Return(votes, nil)
	repo.On("SetCorrectness", ctx, votes[0].ID, true).Return(nil)
	repo.On("SetCorrectness", ctx, votes[1].ID, false).Return(cause)
	repo.On("SetCorrectness", ctx, votes[2].ID, true).Return(nil)

	res, err := NewGrader(repo).Grade(ctx, q)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPartialGrading)
	assert.ErrorIs(t, err, cause)

	var pge *domain.PartialGradingError
	require.ErrorAs(t, err, &pge)
	assert.Equal(t, []uuid.UUID{votes[1].ID}, pge.Ungraded)
	assert.Equal(t, 2, pge.Graded)

	require.NotNil(t, res)
	assert.Equal(t, 2, res.Correct)
	repo.AssertNumberOfCalls(t, "SetCorrectness", 3)
}

func TestGrade_SkipsAlreadyGraded(t *testing.T) {
	ctx := context.Background()
	q := scoredQuestion(domain.OptionB)
	done := true
	votes := []domain.Vote{
		{ID: uuid.New(), Prediction: domain.OptionB, Correct: &done},
		{ID: uuid.New(), Prediction: domain.OptionB},
	}

	repo := new(MockVoteRepository)
	repo.On("ListVotes", ctx, q.ID).Return(votes, nil)
	repo.On("SetCorrectness", ctx, votes[1].ID, true).Return(nil)

	res, err := NewGrader(repo).Grade(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Graded)
	assert.Equal(t, 1, res.Skipped)
	repo.AssertNotCalled(t, "SetCorrectness", ctx, votes[0].ID, mock.Anything)
}

func TestGrade_ListFailure(t *testing.T) {
	ctx := context.Background()
	q := scoredQuestion(domain.OptionA)
	repo := new(MockVoteRepository)
	repo.On("ListVotes", ctx, q.ID).Return(nil, domain.ErrStoreUnavailable)

	res, err := NewGrader(repo).Grade(ctx, q)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrPartialGrading)
}
