package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "vote.accepted")
const (
	// EventTypeVoteAccepted is published after a vote and its streak update commit
	EventTypeVoteAccepted = "vote.accepted"

	// EventTypeQuestionScored is published once a winner has been recorded
	EventTypeQuestionScored = "question.scored"

	// EventTypeGradingCompleted is published after a grading run, including partial runs
	EventTypeGradingCompleted = "grading.completed"

	// EventTypeQuestionCreated is published when a question is authored
	EventTypeQuestionCreated = "question.created"
)
