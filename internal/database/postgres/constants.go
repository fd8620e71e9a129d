package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names the repositories map to domain errors
const (
	ConstraintVotesVoterQuestion = "votes_voter_question_key"
	ConstraintQuestionsDate      = "questions_question_date_key"
	ConstraintProfilesUsername   = "idx_profiles_username"
)

// Question queries
const (
	questionColumns = `question_id, question_date, question_text, option_a, option_b, actual_winner, scored_at, created_at`

	SQLGetQuestionByDate = `SELECT ` + questionColumns + ` FROM questions WHERE question_date = $1`
	SQLGetQuestionByID   = `SELECT ` + questionColumns + ` FROM questions WHERE question_id = $1`
	SQLGetQuestionShare  = `SELECT ` + questionColumns + ` FROM questions WHERE question_id = $1 FOR SHARE`
	SQLListQuestions     = `SELECT ` + questionColumns + ` FROM questions ORDER BY question_date DESC LIMIT $1`

	SQLInsertQuestion = `
		INSERT INTO questions (question_id, question_date, question_text, option_a, option_b, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	// Only an unscored question accepts a winner
	SQLSetWinner = `
		UPDATE questions SET actual_winner = $2, scored_at = NOW()
		WHERE question_id = $1 AND actual_winner IS NULL`

	SQLQuestionExists = `SELECT EXISTS (SELECT 1 FROM questions WHERE question_id = $1)`
)

// Vote queries
const (
	voteColumns = `vote_id, voter_id, question_id, choice, prediction, correct_prediction, created_at`

	SQLInsertVote = `
		INSERT INTO votes (vote_id, voter_id, question_id, choice, prediction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	SQLListVotes        = `SELECT ` + voteColumns + ` FROM votes WHERE question_id = $1 ORDER BY created_at, vote_id`
	SQLListGradedVotes  = `SELECT ` + voteColumns + ` FROM votes WHERE correct_prediction IS NOT NULL`
	SQLListVotesByVoter = `SELECT ` + voteColumns + ` FROM votes WHERE voter_id = $1 ORDER BY created_at DESC`
	SQLGetVoteByVoter   = `SELECT ` + voteColumns + ` FROM votes WHERE voter_id = $1 AND question_id = $2`

	// Grading writes a vote at most once
	SQLSetCorrectness = `
		UPDATE votes SET correct_prediction = $2, graded_at = NOW()
		WHERE vote_id = $1 AND correct_prediction IS NULL`

	SQLCountVotes = `
		SELECT COUNT(*) FILTER (WHERE choice = 'A'), COUNT(*) FILTER (WHERE choice = 'B')
		FROM votes WHERE question_id = $1`
)

// Streak queries
const (
	streakColumns = `voter_id, current_streak, longest_streak, last_voted_date, updated_at`

	SQLGetStreak          = `SELECT ` + streakColumns + ` FROM streaks WHERE voter_id = $1`
	SQLGetStreakForUpdate = `SELECT ` + streakColumns + ` FROM streaks WHERE voter_id = $1 FOR UPDATE`
	SQLListStreaks        = `SELECT ` + streakColumns + ` FROM streaks`

	SQLUpsertStreak = `
		INSERT INTO streaks (voter_id, current_streak, longest_streak, last_voted_date, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (voter_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_voted_date = EXCLUDED.last_voted_date,
			updated_at = EXCLUDED.updated_at`
)

// Profile and comment queries
const (
	SQLGetProfile    = `SELECT voter_id, username, updated_at FROM profiles WHERE voter_id = $1`
	SQLListProfiles  = `SELECT voter_id, username, updated_at FROM profiles`
	SQLUpsertProfile = `
		INSERT INTO profiles (voter_id, username, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (voter_id) DO UPDATE SET username = EXCLUDED.username, updated_at = EXCLUDED.updated_at`

	commentColumns = `comment_id, question_id, voter_id, parent_id, content, created_at`

	SQLInsertComment = `
		INSERT INTO comments (comment_id, question_id, voter_id, parent_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	SQLGetComment   = `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1`
	SQLListComments = `SELECT ` + commentColumns + ` FROM comments WHERE question_id = $1 ORDER BY created_at, comment_id`
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToGetQuestion       = "failed to get question"
	ErrMsgFailedToListQuestions     = "failed to list questions"
	ErrMsgFailedToInsertQuestion    = "failed to insert question"
	ErrMsgFailedToSetWinner         = "failed to set winner"
	ErrMsgFailedToInsertVote        = "failed to insert vote"
	ErrMsgFailedToListVotes         = "failed to list votes"
	ErrMsgFailedToGetVote           = "failed to get vote"
	ErrMsgFailedToSetCorrectness    = "failed to set vote correctness"
	ErrMsgFailedToCountVotes        = "failed to count votes"
	ErrMsgFailedToGetStreak         = "failed to get streak"
	ErrMsgFailedToUpsertStreak      = "failed to upsert streak"
	ErrMsgFailedToListStreaks       = "failed to list streaks"
	ErrMsgFailedToGetProfile        = "failed to get profile"
	ErrMsgFailedToUpsertProfile     = "failed to upsert profile"
	ErrMsgFailedToListProfiles      = "failed to list profiles"
	ErrMsgFailedToInsertComment     = "failed to insert comment"
	ErrMsgFailedToGetComment        = "failed to get comment"
	ErrMsgFailedToListComments      = "failed to list comments"
)
