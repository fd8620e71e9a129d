package repository

import (
	"context"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// Streak defines the interface for streak persistence
type Streak interface {
	// GetStreak returns nil, nil for a voter who has never voted
	GetStreak(ctx context.Context, voterID string) (*domain.StreakState, error)
	UpsertStreak(ctx context.Context, state *domain.StreakState) error
	ListStreaks(ctx context.Context) ([]domain.StreakState, error)
}
