// Package comment handles discussion threads under a question.
package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// MaxContentLength bounds a single comment
const MaxContentLength = 1000

// Service defines the interface for comment operations
type Service interface {
	Post(ctx context.Context, questionID uuid.UUID, voterID, content string, parentID *uuid.UUID) (*domain.Comment, error)
	List(ctx context.Context, questionID uuid.UUID) ([]domain.Comment, error)
}

type service struct {
	questions repository.Question
	comments  repository.Comment
}

// NewService creates a new comment service
func NewService(questions repository.Question, comments repository.Comment) Service {
	return &service{questions: questions, comments: comments}
}

// Post adds a comment. A reply's parent must exist on the same question.
func (s *service) Post(ctx context.Context, questionID uuid.UUID, voterID, content string, parentID *uuid.UUID) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > MaxContentLength {
		return nil, fmt.Errorf("%w: comment must be 1-%d characters", domain.ErrInvalidInput, MaxContentLength)
	}

	q, err := s.questions.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, questionID)
	}

	if parentID != nil {
		parent, err := s.comments.GetComment(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent comment: %w", err)
		}
		if parent == nil || parent.QuestionID != questionID {
			return nil, fmt.Errorf("%w: %s", domain.ErrCommentParent, *parentID)
		}
	}

	c := &domain.Comment{
		QuestionID: questionID,
		VoterID:    voterID,
		ParentID:   parentID,
		Content:    content,
	}
	if err := s.comments.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the question's comments oldest first
func (s *service) List(ctx context.Context, questionID uuid.UUID) ([]domain.Comment, error) {
	comments, err := s.comments.ListComments(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}
