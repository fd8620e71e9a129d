package voting

// Log messages
const (
	LogMsgVoteAccepted  = "Vote accepted"
	LogMsgVoteRejected  = "Vote rejected"
	LogMsgPublishFailed = "Failed to publish vote event"
)

// Error messages
const (
	ErrMsgLoadQuestion = "failed to load today's question"
	ErrMsgLoadProfile  = "failed to load profile"
	ErrMsgBeginTx      = "failed to begin vote transaction"
	ErrMsgLockQuestion = "failed to lock question"
	ErrMsgInsertVote   = "failed to insert vote"
	ErrMsgReadStreak   = "failed to read streak"
	ErrMsgWriteStreak  = "failed to write streak"
	ErrMsgCommit       = "failed to commit vote"
)
