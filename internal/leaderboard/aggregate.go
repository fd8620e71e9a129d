// Package leaderboard derives per-voter standings from graded votes.
package leaderboard

import (
	"sort"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/streak"
)

// SortBy names a presentation order for entries
type SortBy string

// Supported orders
const (
	SortNone     SortBy = ""
	SortWins     SortBy = "wins"
	SortAccuracy SortBy = "accuracy"
	SortStreak   SortBy = "streak"
)

// Valid reports whether s is a known order
func (s SortBy) Valid() bool {
	switch s {
	case SortNone, SortWins, SortAccuracy, SortStreak:
		return true
	}
	return false
}

// Aggregate builds one entry per voter with at least one graded vote. Ungraded
// votes are ignored. CurrentStreak is reported as seen on today, so a broken
// streak reads as 0; StoredStreak keeps the persisted value. The result has no
// particular order.
func Aggregate(votes []domain.Vote, streaks []domain.StreakState, profiles []domain.Profile, today domain.Date) []domain.LeaderboardEntry {
	byVoter := make(map[string]*domain.LeaderboardEntry)
	order := make([]string, 0)

	for i := range votes {
		v := &votes[i]
		if !v.IsGraded() {
			continue
		}
		e, ok := byVoter[v.VoterID]
		if !ok {
			e = &domain.LeaderboardEntry{VoterID: v.VoterID}
			byVoter[v.VoterID] = e
			order = append(order, v.VoterID)
		}
		e.Total++
		if *v.Correct {
			e.Wins++
		} else {
			e.Losses++
		}
	}

	for i := range streaks {
		if e, ok := byVoter[streaks[i].VoterID]; ok {
			e.CurrentStreak = streak.Effective(&streaks[i], today)
			e.StoredStreak = streaks[i].CurrentStreak
			e.LongestStreak = streaks[i].LongestStreak
		}
	}
	for _, p := range profiles {
		if e, ok := byVoter[p.VoterID]; ok {
			e.Username = p.Username
		}
	}

	out := make([]domain.LeaderboardEntry, 0, len(order))
	for _, id := range order {
		e := byVoter[id]
		e.Accuracy = Accuracy(e.Wins, e.Total)
		out = append(out, *e)
	}
	return out
}

// Accuracy is wins as a percentage of total, rounded to one decimal. Zero
// total yields 0.
func Accuracy(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return domain.RoundTo(float64(wins)/float64(total)*100, 1)
}

// Sort orders entries in place, highest first. Ties fall back to wins, then
// accuracy, then voter id.
func Sort(entries []domain.LeaderboardEntry, by SortBy) {
	if by == SortNone {
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch by {
		case SortAccuracy:
			if a.Accuracy != b.Accuracy {
				return a.Accuracy > b.Accuracy
			}
		case SortStreak:
			if a.CurrentStreak != b.CurrentStreak {
				return a.CurrentStreak > b.CurrentStreak
			}
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		return a.VoterID < b.VoterID
	})
}
