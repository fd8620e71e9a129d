package domain

// LeaderboardEntry is derived from graded votes and streak state; it is never stored.
type LeaderboardEntry struct {
	VoterID       string  `json:"voter_id"`
	Username      string  `json:"username,omitempty"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Total         int     `json:"total"`
	Accuracy      float64 `json:"accuracy"`
	// CurrentStreak is display-adjusted: it reads 0 once the voter has
	// missed a day, even though the stored streak only resets on the next vote.
	CurrentStreak int     `json:"current_streak"`
	// StoredStreak is current_streak exactly as persisted.
	StoredStreak  int     `json:"stored_streak"`
	LongestStreak int     `json:"longest_streak"`
}

// VoterRecord is a single voter's standing plus today's participation.
type VoterRecord struct {
	LeaderboardEntry
	VotedToday bool  `json:"voted_today"`
	TodayVote  *Vote `json:"today_vote,omitempty"`
}
