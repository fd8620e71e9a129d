// Package streak holds the consecutive-day voting rules.
package streak

import (
	"time"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// Advance returns the state after voterID casts a vote dated date.
//
// A vote on the day after the last counted vote extends the streak. Anything
// else (first vote, a gap, or a second entry on the same date) starts over at 1.
// Same-date entries cannot normally occur because the vote store allows one
// vote per voter per question.
func Advance(prev *domain.StreakState, voterID string, date domain.Date, now time.Time) domain.StreakState {
	next := domain.StreakState{
		VoterID:       voterID,
		CurrentStreak: 1,
		LastVotedDate: date,
		UpdatedAt:     now,
	}
	if prev == nil {
		next.LongestStreak = 1
		return next
	}

	if !prev.LastVotedDate.IsZero() && prev.LastVotedDate.AddDays(1) == date {
		next.CurrentStreak = prev.CurrentStreak + 1
	}
	next.LongestStreak = max(prev.LongestStreak, next.CurrentStreak)
	return next
}

// Effective is the streak as displayed on today's date. A streak whose last
// vote is older than yesterday is broken and reads as 0, even though the stored
// state keeps its old length until the voter's next vote.
func Effective(state *domain.StreakState, today domain.Date) int {
	if state == nil || state.LastVotedDate.IsZero() {
		return 0
	}
	if state.LastVotedDate.Before(today.AddDays(-1)) {
		return 0
	}
	return state.CurrentStreak
}
