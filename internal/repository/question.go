package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// Question defines the interface for question persistence
type Question interface {
	// GetQuestionByDate returns nil, nil when no question exists for the date
	GetQuestionByDate(ctx context.Context, date domain.Date) (*domain.Question, error)
	GetQuestionByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	// CreateQuestion returns domain.ErrQuestionExists when the date is taken
	CreateQuestion(ctx context.Context, q *domain.Question) error
	// SetWinner records the winner only if none is set, otherwise domain.ErrAlreadyScored
	SetWinner(ctx context.Context, questionID uuid.UUID, winner domain.Option) error
	// ListQuestions returns the most recent questions first, up to limit
	ListQuestions(ctx context.Context, limit int) ([]domain.Question, error)
}
