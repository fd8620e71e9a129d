// Package results reports the vote distribution of recent questions.
package results

import (
	"context"
	"fmt"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// Page size bounds
const (
	DefaultLimit = 30
	MaxLimit     = 365
)

// Service defines the interface for the results page
type Service interface {
	List(ctx context.Context, limit int) ([]domain.QuestionResult, error)
}

type service struct {
	questions repository.Question
	votes     repository.Vote
}

// NewService creates a new results service
func NewService(questions repository.Question, votes repository.Vote) Service {
	return &service{questions: questions, votes: votes}
}

// List returns the most recent questions, newest first, with per-option counts
// and percentages. limit is clamped to [1, MaxLimit]; zero means DefaultLimit.
func (s *service) List(ctx context.Context, limit int) ([]domain.QuestionResult, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	questions, err := s.questions.ListQuestions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	out := make([]domain.QuestionResult, 0, len(questions))
	for _, q := range questions {
		tally, err := s.votes.CountVotes(ctx, q.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count votes for %s: %w", q.ID, err)
		}
		pa, pb := tally.Percentages()
		out = append(out, domain.QuestionResult{Question: q, Tally: tally, PercentA: pa, PercentB: pb})
	}
	return out, nil
}
