package grading

// Log messages
const (
	LogMsgGradingStarted   = "Grading predictions"
	LogMsgGradingCompleted = "Grading completed"
	LogMsgGradeVoteFailed  = "Failed to grade vote"
)

// Error messages
const (
	ErrMsgListVotes = "failed to list votes for grading"
)
