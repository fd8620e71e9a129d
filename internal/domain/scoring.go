package domain

import "github.com/google/uuid"

// GradeResult summarizes one grading run.
type GradeResult struct {
	QuestionID uuid.UUID   `json:"question_id"`
	Winner     Option      `json:"winner"`
	Graded     int         `json:"graded"`
	Correct    int         `json:"correct"`
	Incorrect  int         `json:"incorrect"`
	Skipped    int         `json:"skipped"`
	Ungraded   []uuid.UUID `json:"ungraded,omitempty"`
}

// ScoreResult summarizes one scoring run for a date.
type ScoreResult struct {
	Date       Date         `json:"date"`
	QuestionID uuid.UUID    `json:"question_id"`
	Tally      Tally        `json:"tally"`
	Winner     Option       `json:"winner"`
	Grading    *GradeResult `json:"grading,omitempty"`
}
