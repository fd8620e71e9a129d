package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/event"
	"github.com/osse101/DailyPoll_Go/internal/grading"
	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/metrics"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// Service defines the interface for the daily scoring job
type Service interface {
	// Score tallies the question for date, records its winner and grades its votes
	Score(ctx context.Context, date domain.Date) (*domain.ScoreResult, error)
	// GradeQuestion re-runs grading for an already scored question
	GradeQuestion(ctx context.Context, questionID uuid.UUID) (*domain.GradeResult, error)
}

type service struct {
	questions repository.Question
	votes     repository.Vote
	grader    *grading.Grader
	publisher event.Publisher
}

// NewService creates a new scoring service
func NewService(questions repository.Question, votes repository.Vote, publisher event.Publisher) Service {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &service{
		questions: questions,
		votes:     votes,
		grader:    grading.NewGrader(votes),
		publisher: publisher,
	}
}

// ScoringTarget returns the date a run started at now should score: the
// previous calendar day in loc
func ScoringTarget(now time.Time, loc *time.Location) domain.Date {
	return domain.DateOf(now, loc).AddDays(-1)
}

func (s *service) Score(ctx context.Context, date domain.Date) (result *domain.ScoreResult, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordScoringRun(err, time.Since(start).Seconds())
	}()

	log := logger.FromContext(ctx).With(logger.AttrKeyDate, date.String())

	q, err := s.questions.GetQuestionByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadQuestion, err)
	}
	if q == nil {
		log.Warn(LogMsgQuestionMissing)
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, date)
	}

	log = log.With(logger.AttrKeyQuestionID, q.ID)

	if q.IsScored() {
		log.Info(LogMsgAlreadyScored, "winner", *q.Winner)
		result = &domain.ScoreResult{Date: date, QuestionID: q.ID, Winner: *q.Winner}
		grade, gerr := s.grade(ctx, q)
		result.Grading = grade
		if gerr != nil {
			// the resume did not finish; report why, not that there was nothing to do
			return result, gerr
		}
		return result, fmt.Errorf("%w: %s", domain.ErrAlreadyScored, date)
	}

	log.Info(LogMsgScoringStarted)

	tally, err := s.votes.CountVotes(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCountVotes, err)
	}
	if tally.Total() == 0 {
		log.Warn(LogMsgNoVotes)
		return nil, fmt.Errorf("%w: %s", domain.ErrNoVotesRecorded, date)
	}

	winner := tally.Winner()
	if err := s.questions.SetWinner(ctx, q.ID, winner); err != nil {
		if errors.Is(err, domain.ErrAlreadyScored) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgSetWinner, err)
	}
	q.Winner = &winner

	log.Info(LogMsgQuestionScored, "winner", winner, "votes_a", tally.A, "votes_b", tally.B)
	s.publish(ctx, event.NewQuestionScoredEvent(q, tally))

	result = &domain.ScoreResult{Date: date, QuestionID: q.ID, Tally: tally, Winner: winner}
	grade, err := s.grade(ctx, q)
	result.Grading = grade
	return result, err
}

func (s *service) GradeQuestion(ctx context.Context, questionID uuid.UUID) (*domain.GradeResult, error) {
	q, err := s.questions.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadQuestion, err)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, questionID)
	}
	return s.grade(ctx, q)
}

// grade runs the grader and publishes its outcome, partial runs included
func (s *service) grade(ctx context.Context, q *domain.Question) (*domain.GradeResult, error) {
	res, err := s.grader.Grade(ctx, q)
	if res != nil && (res.Graded > 0 || len(res.Ungraded) > 0) {
		s.publish(ctx, event.NewGradingCompletedEvent(res))
	}
	if err != nil && errors.Is(err, domain.ErrPartialGrading) {
		logger.FromContext(ctx).Error(LogMsgGradingIncomplete,
			logger.AttrKeyQuestionID, q.ID,
			"ungraded", len(res.Ungraded),
			"error", err)
	}
	return res, err
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
