package domain

import "time"

// StreakState tracks a voter's run of consecutive voting days.
type StreakState struct {
	VoterID       string    `json:"voter_id"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	LastVotedDate Date      `json:"last_voted_date"`
	UpdatedAt     time.Time `json:"updated_at"`
}
