package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
	"github.com/osse101/DailyPoll_Go/internal/streak"
)

// Error messages
const (
	ErrMsgListGraded   = "failed to list graded votes"
	ErrMsgListStreaks  = "failed to list streaks"
	ErrMsgListProfiles = "failed to list profiles"
	ErrMsgVoterVotes   = "failed to list voter votes"
	ErrMsgVoterStreak  = "failed to load voter streak"
	ErrMsgVoterProfile = "failed to load voter profile"
	ErrMsgTodayVote    = "failed to load today's vote"
)

// Service defines the interface for leaderboard reads
type Service interface {
	Leaderboard(ctx context.Context, by SortBy) ([]domain.LeaderboardEntry, error)
	Record(ctx context.Context, voterID string) (*domain.VoterRecord, error)
}

type service struct {
	questions repository.Question
	votes     repository.Vote
	streaks   repository.Streak
	profiles  repository.Profile
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a new leaderboard service. loc decides which date counts
// as today when reporting streaks.
func NewService(
	questions repository.Question,
	votes repository.Vote,
	streaks repository.Streak,
	profiles repository.Profile,
	loc *time.Location,
) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		questions: questions,
		votes:     votes,
		streaks:   streaks,
		profiles:  profiles,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *service) today() domain.Date {
	return domain.DateOf(s.now(), s.loc)
}

func (s *service) Leaderboard(ctx context.Context, by SortBy) ([]domain.LeaderboardEntry, error) {
	votes, err := s.votes.ListGradedVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListGraded, err)
	}
	streaks, err := s.streaks.ListStreaks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListStreaks, err)
	}
	profiles, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListProfiles, err)
	}

	entries := Aggregate(votes, streaks, profiles, s.today())
	Sort(entries, by)
	return entries, nil
}

// Record returns one voter's standing. A voter with no graded votes gets a
// zero record rather than an error.
func (s *service) Record(ctx context.Context, voterID string) (*domain.VoterRecord, error) {
	today := s.today()

	votes, err := s.votes.ListVotesByVoter(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgVoterVotes, err)
	}
	st, err := s.streaks.GetStreak(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgVoterStreak, err)
	}
	p, err := s.profiles.GetProfile(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgVoterProfile, err)
	}

	rec := &domain.VoterRecord{LeaderboardEntry: domain.LeaderboardEntry{VoterID: voterID}}
	var streaks []domain.StreakState
	if st != nil {
		streaks = []domain.StreakState{*st}
		rec.CurrentStreak = streak.Effective(st, today)
		rec.StoredStreak = st.CurrentStreak
		rec.LongestStreak = st.LongestStreak
	}
	var profiles []domain.Profile
	if p != nil {
		profiles = []domain.Profile{*p}
		rec.Username = p.Username
	}
	if entries := Aggregate(votes, streaks, profiles, today); len(entries) == 1 {
		rec.LeaderboardEntry = entries[0]
	}

	q, err := s.questions.GetQuestionByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgTodayVote, err)
	}
	if q != nil {
		for i := range votes {
			if votes[i].QuestionID == q.ID {
				v := votes[i]
				rec.TodayVote = &v
				rec.VotedToday = true
				break
			}
		}
	}
	return rec, nil
}
