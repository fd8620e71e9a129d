package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the display name a voter picks before voting.
type Profile struct {
	VoterID   string    `json:"voter_id"`
	Username  string    `json:"username"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment is a discussion entry on a question. ParentID links a reply to its parent.
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	QuestionID uuid.UUID  `json:"question_id"`
	VoterID    string     `json:"voter_id"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}
