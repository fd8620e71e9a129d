package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Scoring errors
	ErrMsgQuestionNotFound = "question not found"
	ErrMsgNoVotesRecorded  = "no votes recorded"
	ErrMsgAlreadyScored    = "question already scored"

	// Grading errors
	ErrMsgWinnerNotSet   = "winner not set"
	ErrMsgPartialGrading = "partial grading failure"

	// Voting errors
	ErrMsgDuplicateVote     = "vote already recorded"
	ErrMsgVotingClosed      = "voting is closed for this question"
	ErrMsgInvalidOption     = "invalid option"
	ErrMsgProfileIncomplete = "username required before voting"

	// Authoring errors
	ErrMsgQuestionExists = "question already exists for date"
	ErrMsgInvalidDate    = "invalid date"

	// Profile and comment errors
	ErrMsgUsernameTaken = "username already taken"
	ErrMsgCommentParent = "parent comment not found for question"

	// Database/System errors
	ErrMsgStoreUnavailable = "store unavailable"
	ErrMsgTxClosed         = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Scoring errors
	ErrQuestionNotFound = errors.New(ErrMsgQuestionNotFound)
	ErrNoVotesRecorded  = errors.New(ErrMsgNoVotesRecorded)
	ErrAlreadyScored    = errors.New(ErrMsgAlreadyScored)

	// Grading errors
	ErrWinnerNotSet   = errors.New(ErrMsgWinnerNotSet)
	ErrPartialGrading = errors.New(ErrMsgPartialGrading)

	// Voting errors
	ErrDuplicateVote     = errors.New(ErrMsgDuplicateVote)
	ErrVotingClosed      = errors.New(ErrMsgVotingClosed)
	ErrInvalidOption     = errors.New(ErrMsgInvalidOption)
	ErrProfileIncomplete = errors.New(ErrMsgProfileIncomplete)

	// Authoring errors
	ErrQuestionExists = errors.New(ErrMsgQuestionExists)
	ErrInvalidDate    = errors.New(ErrMsgInvalidDate)

	// Profile and comment errors
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)
	ErrCommentParent = errors.New(ErrMsgCommentParent)

	// Transient store failures, safe to retry the whole operation
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// PartialGradingError reports the votes that a grading run could not mark.
// Retrying the run completes them without touching votes already graded.
type PartialGradingError struct {
	QuestionID uuid.UUID
	Ungraded   []uuid.UUID
	Graded     int
	Skipped    int
	Cause      error
}

func (e *PartialGradingError) Error() string {
	ids := make([]string, len(e.Ungraded))
	for i, id := range e.Ungraded {
		ids[i] = id.String()
	}
	msg := fmt.Sprintf("%s: question %s: %d votes ungraded [%s]",
		ErrMsgPartialGrading, e.QuestionID, len(e.Ungraded), strings.Join(ids, ","))
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Is lets errors.Is(err, ErrPartialGrading) match.
func (e *PartialGradingError) Is(target error) bool {
	return target == ErrPartialGrading
}

func (e *PartialGradingError) Unwrap() error {
	return e.Cause
}
