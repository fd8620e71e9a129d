package leaderboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

var today = domain.NewDate(2024, time.February, 10)

func graded(voter string, correct bool) domain.Vote {
	c := correct
	return domain.Vote{ID: uuid.New(), VoterID: voter, QuestionID: uuid.New(), Correct: &c}
}

func byID(entries []domain.LeaderboardEntry) map[string]domain.LeaderboardEntry {
	out := make(map[string]domain.LeaderboardEntry, len(entries))
	for _, e := range entries {
		out[e.VoterID] = e
	}
	return out
}

func TestAggregate_ThreeAndOne(t *testing.T) {
	votes := []domain.Vote{
		graded("alice", true),
		graded("alice", true),
		graded("alice", false),
		graded("alice", true),
	}

	entries := Aggregate(votes, nil, nil, today)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, 3, e.Wins)
	assert.Equal(t, 1, e.Losses)
	assert.Equal(t, 4, e.Total)
	assert.Equal(t, 75.0, e.Accuracy)
}

func TestAggregate_IgnoresUngradedAndVotersWithoutGrades(t *testing.T) {
	votes := []domain.Vote{
		graded("alice", false),
		{ID: uuid.New(), VoterID: "alice"},
		{ID: uuid.New(), VoterID: "bob"},
	}

	entries := byID(Aggregate(votes, nil, nil, today))
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries["alice"].Total)
	assert.Equal(t, 0.0, entries["alice"].Accuracy)
	assert.NotContains(t, entries, "bob")
}

func TestAggregate_JoinsStreaksAndProfiles(t *testing.T) {
	votes := []domain.Vote{graded("alice", true), graded("bob", true)}
	streaks := []domain.StreakState{
		{VoterID: "alice", CurrentStreak: 4, LongestStreak: 6, LastVotedDate: today},
		{VoterID: "bob", CurrentStreak: 9, LongestStreak: 9, LastVotedDate: today.AddDays(-3)},
		{VoterID: "zed", CurrentStreak: 2, LastVotedDate: today},
	}
	profiles := []domain.Profile{{VoterID: "alice", Username: "alice_w"}}

	entries := byID(Aggregate(votes, streaks, profiles, today))
	require.Len(t, entries, 2)

	assert.Equal(t, 4, entries["alice"].CurrentStreak)
	assert.Equal(t, 6, entries["alice"].LongestStreak)
	assert.Equal(t, "alice_w", entries["alice"].Username)

	assert.Equal(t, 0, entries["bob"].CurrentStreak, "broken streak reads as zero")
	assert.Equal(t, 9, entries["bob"].StoredStreak, "persisted value is still reported")
	assert.Equal(t, 4, entries["alice"].StoredStreak)
	assert.Equal(t, 9, entries["bob"].LongestStreak)
}

func TestAccuracy_Rounding(t *testing.T) {
	assert.Equal(t, 66.7, Accuracy(2, 3))
	assert.Equal(t, 33.3, Accuracy(1, 3))
	assert.Equal(t, 0.0, Accuracy(0, 0))
	assert.Equal(t, 100.0, Accuracy(5, 5))
}

func TestSort(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{VoterID: "a", Wins: 2, Accuracy: 100, CurrentStreak: 1},
		{VoterID: "b", Wins: 5, Accuracy: 50, CurrentStreak: 0},
		{VoterID: "c", Wins: 3, Accuracy: 75, CurrentStreak: 7},
	}

	ids := func() []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.VoterID
		}
		return out
	}

	Sort(entries, SortWins)
	assert.Equal(t, []string{"b", "c", "a"}, ids())

	Sort(entries, SortAccuracy)
	assert.Equal(t, []string{"a", "c", "b"}, ids())

	Sort(entries, SortStreak)
	assert.Equal(t, []string{"c", "a", "b"}, ids())

	assert.True(t, SortWins.Valid())
	assert.False(t, SortBy("name").Valid())
}
