package domain

// VoteAcceptedPayload is the event payload for vote.accepted events
type VoteAcceptedPayload struct {
	VoteID        string `json:"vote_id"`
	VoterID       string `json:"voter_id"`
	QuestionID    string `json:"question_id"`
	QuestionDate  string `json:"question_date"`
	Choice        Option `json:"choice"`
	Prediction    Option `json:"prediction"`
	CurrentStreak int    `json:"current_streak"`
	Timestamp     int64  `json:"timestamp"`
}

// QuestionScoredPayload is the event payload for question.scored events
type QuestionScoredPayload struct {
	QuestionID   string `json:"question_id"`
	QuestionDate string `json:"question_date"`
	Winner       Option `json:"winner"`
	VotesA       int    `json:"votes_a"`
	VotesB       int    `json:"votes_b"`
	Timestamp    int64  `json:"timestamp"`
}

// GradingCompletedPayload is the event payload for grading.completed events
type GradingCompletedPayload struct {
	QuestionID string   `json:"question_id"`
	Graded     int      `json:"graded"`
	Correct    int      `json:"correct"`
	Incorrect  int      `json:"incorrect"`
	Ungraded   []string `json:"ungraded,omitempty"`
	Timestamp  int64    `json:"timestamp"`
}

// QuestionCreatedPayload is the event payload for question.created events
type QuestionCreatedPayload struct {
	QuestionID   string `json:"question_id"`
	QuestionDate string `json:"question_date"`
	Timestamp    int64  `json:"timestamp"`
}
