package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one voter's choice and prediction for a question.
// Correct stays nil until the vote is graded.
type Vote struct {
	ID         uuid.UUID `json:"id"`
	VoterID    string    `json:"voter_id"`
	QuestionID uuid.UUID `json:"question_id"`
	Choice     Option    `json:"choice"`
	Prediction Option    `json:"prediction"`
	Correct    *bool     `json:"correct_prediction,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsGraded reports whether the correctness flag has been set.
func (v *Vote) IsGraded() bool {
	return v.Correct != nil
}

// VoteReceipt is returned to the voter once a vote and its streak update are committed.
type VoteReceipt struct {
	Vote   Vote        `json:"vote"`
	Streak StreakState `json:"streak"`
}
