package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

var (
	jan1 = domain.NewDate(2024, time.January, 1)
	now  = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
)

func TestAdvance_FirstVoteStartsAtOne(t *testing.T) {
	got := Advance(nil, "alice", jan1, now)

	assert.Equal(t, "alice", got.VoterID)
	assert.Equal(t, 1, got.CurrentStreak)
	assert.Equal(t, 1, got.LongestStreak)
	assert.Equal(t, jan1, got.LastVotedDate)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestAdvance_ConsecutiveDaysAccumulate(t *testing.T) {
	for n := 1; n <= 40; n++ {
		var state *domain.StreakState
		for day := 0; day < n; day++ {
			next := Advance(state, "alice", jan1.AddDays(day), now)
			state = &next
		}
		assert.Equal(t, n, state.CurrentStreak, "after %d consecutive days", n)
		assert.Equal(t, n, state.LongestStreak)
	}
}

func TestAdvance_Transitions(t *testing.T) {
	prev := &domain.StreakState{VoterID: "alice", CurrentStreak: 4, LongestStreak: 7, LastVotedDate: jan1}

	tests := []struct {
		name        string
		date        domain.Date
		wantCurrent int
		wantLongest int
	}{
		{"next day extends", jan1.AddDays(1), 5, 7},
		{"one day gap resets", jan1.AddDays(2), 1, 7},
		{"long gap resets", jan1.AddDays(30), 1, 7},
		{"same day re-entry resets", jan1, 1, 7},
		{"earlier date resets", jan1.AddDays(-1), 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(prev, "alice", tt.date, now)
			assert.Equal(t, tt.wantCurrent, got.CurrentStreak)
			assert.Equal(t, tt.wantLongest, got.LongestStreak)
			assert.Equal(t, tt.date, got.LastVotedDate)
		})
	}
}

func TestAdvance_LongestTracksNewRecord(t *testing.T) {
	prev := &domain.StreakState{VoterID: "bob", CurrentStreak: 3, LongestStreak: 3, LastVotedDate: jan1}
	got := Advance(prev, "bob", jan1.AddDays(1), now)
	assert.Equal(t, 4, got.LongestStreak)
}

func TestAdvance_AcrossMonthAndYear(t *testing.T) {
	dec31 := domain.NewDate(2023, time.December, 31)
	prev := &domain.StreakState{CurrentStreak: 2, LongestStreak: 2, LastVotedDate: dec31}
	assert.Equal(t, 3, Advance(prev, "x", jan1, now).CurrentStreak)

	feb28 := domain.NewDate(2023, time.February, 28)
	prev = &domain.StreakState{CurrentStreak: 1, LongestStreak: 1, LastVotedDate: feb28}
	assert.Equal(t, 2, Advance(prev, "x", domain.NewDate(2023, time.March, 1), now).CurrentStreak)
}

func TestEffective(t *testing.T) {
	state := &domain.StreakState{CurrentStreak: 6, LastVotedDate: jan1}

	assert.Equal(t, 6, Effective(state, jan1), "voted today")
	assert.Equal(t, 6, Effective(state, jan1.AddDays(1)), "voted yesterday, today still open")
	assert.Equal(t, 0, Effective(state, jan1.AddDays(2)), "missed a day")
	assert.Equal(t, 0, Effective(nil, jan1))
	assert.Equal(t, 0, Effective(&domain.StreakState{}, jan1))
}
