// Package question handles authoring and lookup of daily questions.
package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/event"
	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/repository"
	"github.com/osse101/DailyPoll_Go/internal/validation"
)

// Limits for authored text
const (
	MaxTextLength  = 500
	MaxLabelLength = 100
)

// Log and error messages
const (
	LogMsgQuestionCreated = "Question created"
	LogMsgSeedSkipped     = "Seed question already exists, skipping"
	LogMsgPublishFailed   = "Failed to publish question event"
	ErrMsgReadSeed        = "failed to read seed file"
	ErrMsgParseSeed       = "failed to parse seed file"
	ErrMsgLoadQuestion    = "failed to load question"
)

// CreateRequest describes a new question
type CreateRequest struct {
	Date    string `json:"date" validate:"required"`
	Text    string `json:"text" validate:"required,max=500"`
	OptionA string `json:"option_a,omitempty" validate:"max=100"`
	OptionB string `json:"option_b,omitempty" validate:"max=100"`
}

// Seed is the bulk import file format
type Seed struct {
	Questions []CreateRequest `json:"questions"`
}

// ImportResult reports a seed import
type ImportResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Service defines the interface for question operations
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Question, error)
	Today(ctx context.Context) (*domain.Question, error)
	GetByDate(ctx context.Context, date domain.Date) (*domain.Question, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}

type service struct {
	repo      repository.Question
	publisher event.Publisher
	schemas   validation.SchemaValidator
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a new question service
func NewService(repo repository.Question, publisher event.Publisher, loc *time.Location) Service {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		schemas:   validation.NewSchemaValidator(),
		loc:       loc,
		now:       time.Now,
	}
}

// Create stores a question for a date that has none yet. Empty labels default
// to Yes and No.
func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Question, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(req.Text)
	if text == "" || len(text) > MaxTextLength {
		return nil, fmt.Errorf("%w: question text must be 1-%d characters", domain.ErrInvalidInput, MaxTextLength)
	}
	a, b := labelOrDefault(req.OptionA, domain.DefaultOptionALabel), labelOrDefault(req.OptionB, domain.DefaultOptionBLabel)
	if len(a) > MaxLabelLength || len(b) > MaxLabelLength {
		return nil, fmt.Errorf("%w: option labels must be at most %d characters", domain.ErrInvalidInput, MaxLabelLength)
	}

	q := &domain.Question{Date: date, Text: text, OptionA: a, OptionB: b}
	if err := s.repo.CreateQuestion(ctx, q); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgQuestionCreated, logger.AttrKeyQuestionID, q.ID, logger.AttrKeyDate, q.Date.String())
	if err := s.publisher.Publish(ctx, event.NewQuestionCreatedEvent(q)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
	return q, nil
}

func labelOrDefault(label, def string) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	return def
}

// Today returns the question dated today in the poll time zone
func (s *service) Today(ctx context.Context) (*domain.Question, error) {
	return s.GetByDate(ctx, domain.DateOf(s.now(), s.loc))
}

// GetByDate returns domain.ErrQuestionNotFound when no question exists
func (s *service) GetByDate(ctx context.Context, date domain.Date) (*domain.Question, error) {
	q, err := s.repo.GetQuestionByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadQuestion, err)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, date)
	}
	return q, nil
}

// ImportFile validates a seed file against its schema and creates each
// question. Dates that already have a question are skipped.
func (s *service) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadSeed, err)
	}
	if err := s.schemas.ValidateBytes(data, validation.QuestionSeedSchema); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseSeed, err)
	}

	log := logger.FromContext(ctx)
	res := &ImportResult{}
	for _, req := range seed.Questions {
		if _, err := s.Create(ctx, req); err != nil {
			if errors.Is(err, domain.ErrQuestionExists) {
				log.Info(LogMsgSeedSkipped, logger.AttrKeyDate, req.Date)
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("question %s: %w", req.Date, err)
		}
		res.Created++
	}
	return res, nil
}
