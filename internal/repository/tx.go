package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// VoteTx defines the transactional operations of vote acceptance.
// Nothing is visible to other readers until Commit succeeds.
type VoteTx interface {
	// GetQuestionForShare locks the question row against a concurrent winner write
	GetQuestionForShare(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	InsertVote(ctx context.Context, vote *domain.Vote) error
	GetStreakForUpdate(ctx context.Context, voterID string) (*domain.StreakState, error)
	UpsertStreak(ctx context.Context, state *domain.StreakState) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Tx is anything that can be rolled back
type Tx interface {
	Rollback(ctx context.Context) error
}
