package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// Vote defines the interface for vote persistence
type Vote interface {
	ListVotes(ctx context.Context, questionID uuid.UUID) ([]domain.Vote, error)
	// InsertVote returns domain.ErrDuplicateVote when the voter already voted on the question
	InsertVote(ctx context.Context, vote *domain.Vote) error
	// SetCorrectness only writes a vote that has not been graded yet
	SetCorrectness(ctx context.Context, voteID uuid.UUID, correct bool) error
	CountVotes(ctx context.Context, questionID uuid.UUID) (domain.Tally, error)
	ListGradedVotes(ctx context.Context) ([]domain.Vote, error)
	// GetVote returns nil, nil when the voter has not voted on the question
	GetVote(ctx context.Context, voterID string, questionID uuid.UUID) (*domain.Vote, error)
	ListVotesByVoter(ctx context.Context, voterID string) ([]domain.Vote, error)

	// BeginVoteTx starts the unit of work that records a vote together with its streak update
	BeginVoteTx(ctx context.Context) (VoteTx, error)
}
