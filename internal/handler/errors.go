package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"
	ErrMsgMissingVoterID    = "Missing voter identity"
	ErrMsgInvalidSort       = "Invalid sort order"

	// Validation field messages
	ErrMsgFieldRequired    = "This field is required"
	ErrMsgFieldMax         = "Must be at most %s characters"
	ErrMsgFieldMin         = "Must be at least %s characters"
	ErrMsgFieldUUID        = "Must be a valid id"
	ErrMsgFieldOption      = "Must be A or B"
	ErrMsgFieldDate        = "Must be a date in YYYY-MM-DD format"
	ErrMsgFieldInvalidChar = "Contains invalid characters"
	ErrMsgFieldInvalid     = "Invalid value"
	ErrMsgRequestFormat    = "Invalid request format"

	ErrMsgStoreUnreachable = "store connection failed"
)

// Log messages
const (
	LogMsgDecodeFailed        = "Failed to decode %s request"
	LogMsgRequestDecoded      = "%s request decoded"
	LogMsgServiceError        = "%s failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgVoteAccepted        = "Vote accepted"
	LogMsgQuestionCreated     = "Question created"
	LogMsgScoringTriggered    = "Scoring triggered"
	LogMsgGradingTriggered    = "Grading triggered"
	LogMsgUsernameUpdated     = "Username updated"
	LogMsgCommentPosted       = "Comment posted"
	LogMsgOddLogFieldArgCount = "LogRequestFields called with odd number of arguments"
)

// Header names
const (
	HeaderVoterID = "X-Voter-ID"
)
