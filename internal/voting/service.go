package voting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/event"
	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/metrics"
	"github.com/osse101/DailyPoll_Go/internal/repository"
	"github.com/osse101/DailyPoll_Go/internal/streak"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// VoteRequest is one voter's submission for today's question
type VoteRequest struct {
	VoterID    string `json:"-" validate:"required,max=128"`
	QuestionID string `json:"question_id" validate:"required,uuid"`
	Choice     string `json:"choice" validate:"required,max=8"`
	Prediction string `json:"prediction" validate:"required,max=8"`
}

// Config controls the voting window and the profile gate
type Config struct {
	// Location is the poll time zone that decides which date is "today"
	Location *time.Location
	// RequireUsername rejects votes from voters without a username
	RequireUsername bool
	// Now overrides the clock, mainly for tests
	Now func() time.Time
}

// Service defines the interface for vote submission
type Service interface {
	SubmitVote(ctx context.Context, req VoteRequest) (*domain.VoteReceipt, error)
}

type service struct {
	questions repository.Question
	votes     repository.Vote
	profiles  repository.Profile
	publisher event.Publisher
	cfg       Config
}

// NewService creates a new voting service
func NewService(
	questions repository.Question,
	votes repository.Vote,
	profiles repository.Profile,
	publisher event.Publisher,
	cfg Config,
) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &service{
		questions: questions,
		votes:     votes,
		profiles:  profiles,
		publisher: publisher,
		cfg:       cfg,
	}
}

// SubmitVote records the vote and advances the voter's streak in one
// transaction. A failure at any step leaves neither written.
func (s *service) SubmitVote(ctx context.Context, req VoteRequest) (receipt *domain.VoteReceipt, err error) {
	log := logger.FromContext(ctx).With(logger.AttrKeyVoterID, req.VoterID, logger.AttrKeyQuestionID, req.QuestionID)
	defer func() {
		metrics.RecordVote(err)
		if err != nil {
			log.Info(LogMsgVoteRejected, "reason", metrics.VoteOutcome(err), "error", err)
		}
	}()

	if verr := validate.Struct(req); verr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, verr)
	}
	choice, err := domain.ParseOption(req.Choice)
	if err != nil {
		return nil, err
	}
	prediction, err := domain.ParseOption(req.Prediction)
	if err != nil {
		return nil, err
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	now := s.cfg.Now()
	today := domain.DateOf(now, s.cfg.Location)

	q, err := s.questions.GetQuestionByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadQuestion, err)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, today)
	}
	if q.ID != questionID || q.IsScored() {
		return nil, fmt.Errorf("%w: %s", domain.ErrVotingClosed, questionID)
	}

	if s.cfg.RequireUsername {
		if err := s.checkProfile(ctx, req.VoterID); err != nil {
			return nil, err
		}
	}

	receipt, err = s.record(ctx, q, &domain.Vote{
		ID:         uuid.New(),
		VoterID:    req.VoterID,
		QuestionID: q.ID,
		Choice:     choice,
		Prediction: prediction,
		CreatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgVoteAccepted, "streak", receipt.Streak.CurrentStreak)
	if perr := s.publisher.Publish(ctx, event.NewVoteAcceptedEvent(receipt, q.Date)); perr != nil {
		log.Warn(LogMsgPublishFailed, "error", perr)
	}
	return receipt, nil
}

func (s *service) checkProfile(ctx context.Context, voterID string) error {
	p, err := s.profiles.GetProfile(ctx, voterID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadProfile, err)
	}
	if p == nil || p.Username == "" {
		return domain.ErrProfileIncomplete
	}
	return nil
}

func (s *service) record(ctx context.Context, q *domain.Question, vote *domain.Vote) (*domain.VoteReceipt, error) {
	tx, err := s.votes.BeginVoteTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetQuestionForShare(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLockQuestion, err)
	}
	if locked == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, q.ID)
	}
	if locked.IsScored() {
		return nil, fmt.Errorf("%w: %s", domain.ErrVotingClosed, q.ID)
	}

	if err := tx.InsertVote(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrDuplicateVote) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgInsertVote, err)
	}

	prev, err := tx.GetStreakForUpdate(ctx, vote.VoterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadStreak, err)
	}
	next := streak.Advance(prev, vote.VoterID, locked.Date, vote.CreatedAt)
	if err := tx.UpsertStreak(ctx, &next); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgWriteStreak, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommit, err)
	}
	return &domain.VoteReceipt{Vote: *vote, Streak: next}, nil
}
