package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default option labels for a yes/no poll
const (
	DefaultOptionALabel = "Yes"
	DefaultOptionBLabel = "No"
)

// Question is the poll for one calendar date.
// Winner is nil until the question has been scored and never changes afterwards.
type Question struct {
	ID        uuid.UUID  `json:"id"`
	Date      Date       `json:"date"`
	Text      string     `json:"text"`
	OptionA   string     `json:"option_a"`
	OptionB   string     `json:"option_b"`
	Winner    *Option    `json:"winner,omitempty"`
	ScoredAt  *time.Time `json:"scored_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsScored reports whether a winner has been recorded.
func (q *Question) IsScored() bool {
	return q.Winner != nil
}

// Label returns the display label of o.
func (q *Question) Label(o Option) string {
	if o == OptionB {
		return q.OptionB
	}
	return q.OptionA
}

// QuestionResult is a question with its vote distribution.
type QuestionResult struct {
	Question Question `json:"question"`
	Tally    Tally    `json:"tally"`
	PercentA float64  `json:"percent_a"`
	PercentB float64  `json:"percent_b"`
}
