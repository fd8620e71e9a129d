package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// Profile defines the interface for voter profile persistence
type Profile interface {
	GetProfile(ctx context.Context, voterID string) (*domain.Profile, error)
	// UpsertProfile returns domain.ErrUsernameTaken when another voter holds the name
	UpsertProfile(ctx context.Context, profile *domain.Profile) error
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
}

// Comment defines the interface for question comment persistence
type Comment interface {
	CreateComment(ctx context.Context, comment *domain.Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListComments(ctx context.Context, questionID uuid.UUID) ([]domain.Comment, error)
}
