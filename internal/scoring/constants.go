package scoring

// Log messages
const (
	LogMsgScoringStarted    = "Scoring question"
	LogMsgQuestionScored    = "Question scored"
	LogMsgAlreadyScored     = "Question already scored, completing ungraded votes"
	LogMsgNoVotes           = "No votes recorded, winner left unset"
	LogMsgQuestionMissing   = "No question authored for date"
	LogMsgPublishFailed     = "Failed to publish scoring event"
	LogMsgGradingIncomplete = "Grading left votes ungraded"
)

// Error messages
const (
	ErrMsgLoadQuestion = "failed to load question"
	ErrMsgCountVotes   = "failed to count votes"
	ErrMsgSetWinner    = "failed to set winner"
)
