package grading

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// Grader marks each vote's prediction against a scored question's winner
type Grader struct {
	votes repository.Vote
}

// NewGrader creates a new Grader
func NewGrader(votes repository.Vote) *Grader {
	return &Grader{votes: votes}
}

// Grade sets the correctness flag of every ungraded vote on q. Votes that
// already carry a flag are skipped. Each vote is attempted once; when any write
// fails the run continues and a *domain.PartialGradingError lists the
// leftovers. The returned result is populated in both cases.
func (g *Grader) Grade(ctx context.Context, q *domain.Question) (*domain.GradeResult, error) {
	if q == nil || q.Winner == nil {
		return nil, domain.ErrWinnerNotSet
	}
	winner := *q.Winner
	log := logger.FromContext(ctx).With(logger.AttrKeyQuestionID, q.ID, "winner", winner)

	votes, err := g.votes.ListVotes(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListVotes, err)
	}

	log.Info(LogMsgGradingStarted, "votes", len(votes))

	res := &domain.GradeResult{QuestionID: q.ID, Winner: winner}
	var errs []error
	for _, v := range votes {
		if v.IsGraded() {
			res.Skipped++
			continue
		}

		correct := v.Prediction == winner
		if err := g.votes.SetCorrectness(ctx, v.ID, correct); err != nil {
			log.Warn(LogMsgGradeVoteFailed, "vote_id", v.ID, "error", err)
			res.Ungraded = append(res.Ungraded, v.ID)
			errs = append(errs, err)
			continue
		}

		res.Graded++
		if correct {
			res.Correct++
		} else {
			res.Incorrect++
		}
	}

	log.Info(LogMsgGradingCompleted,
		"graded", res.Graded,
		"correct", res.Correct,
		"skipped", res.Skipped,
		"ungraded", len(res.Ungraded))

	if len(res.Ungraded) > 0 {
		return res, &domain.PartialGradingError{
			QuestionID: q.ID,
			Ungraded:   append([]uuid.UUID(nil), res.Ungraded...),
			Graded:     res.Graded,
			Skipped:    res.Skipped,
			Cause:      errors.Join(errs...),
		}
	}
	return res, nil
}
