package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// VoteRepository implements repository.Vote for PostgreSQL
type VoteRepository struct {
	db *pgxpool.Pool
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *pgxpool.Pool) *VoteRepository {
	return &VoteRepository{db: db}
}

var _ repository.Vote = (*VoteRepository)(nil)

func (r *VoteRepository) ListVotes(ctx context.Context, questionID uuid.UUID) ([]domain.Vote, error) {
	return r.list(ctx, SQLListVotes, questionID)
}

func (r *VoteRepository) ListGradedVotes(ctx context.Context) ([]domain.Vote, error) {
	return r.list(ctx, SQLListGradedVotes)
}

func (r *VoteRepository) ListVotesByVoter(ctx context.Context, voterID string) ([]domain.Vote, error) {
	return r.list(ctx, SQLListVotesByVoter, voterID)
}

func (r *VoteRepository) list(ctx context.Context, sql string, args ...any) ([]domain.Vote, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListVotes, err)
	}
	votes, err := scanVotes(rows)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListVotes, err)
	}
	return votes, nil
}

func (r *VoteRepository) GetVote(ctx context.Context, voterID string, questionID uuid.UUID) (*domain.Vote, error) {
	v, err := scanVote(r.db.QueryRow(ctx, SQLGetVoteByVoter, voterID, questionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetVote, err)
	}
	return v, nil
}

func (r *VoteRepository) InsertVote(ctx context.Context, vote *domain.Vote) error {
	return insertVote(ctx, r.db, vote)
}

func insertVote(ctx context.Context, q querier, vote *domain.Vote) error {
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = time.Now().UTC()
	}
	_, err := q.Exec(ctx, SQLInsertVote,
		vote.ID, vote.VoterID, vote.QuestionID, string(vote.Choice), string(vote.Prediction), vote.CreatedAt)
	if err != nil {
		if uniqueViolation(err, ConstraintVotesVoterQuestion) {
			return fmt.Errorf("%w: voter %s question %s", domain.ErrDuplicateVote, vote.VoterID, vote.QuestionID)
		}
		return wrapErr(ErrMsgFailedToInsertVote, err)
	}
	return nil
}

// SetCorrectness leaves an already graded vote untouched
func (r *VoteRepository) SetCorrectness(ctx context.Context, voteID uuid.UUID, correct bool) error {
	if _, err := r.db.Exec(ctx, SQLSetCorrectness, voteID, correct); err != nil {
		return wrapErr(ErrMsgFailedToSetCorrectness, err)
	}
	return nil
}

func (r *VoteRepository) CountVotes(ctx context.Context, questionID uuid.UUID) (domain.Tally, error) {
	var t domain.Tally
	if err := r.db.QueryRow(ctx, SQLCountVotes, questionID).Scan(&t.A, &t.B); err != nil {
		return domain.Tally{}, wrapErr(ErrMsgFailedToCountVotes, err)
	}
	return t, nil
}

// BeginVoteTx starts the unit of work for vote acceptance
func (r *VoteRepository) BeginVoteTx(ctx context.Context) (repository.VoteTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	return &voteTx{tx: tx}, nil
}

// voteTx implements repository.VoteTx on a pgx transaction
type voteTx struct {
	tx pgx.Tx
}

func (t *voteTx) GetQuestionForShare(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	return getQuestion(ctx, t.tx, SQLGetQuestionShare, questionID)
}

func (t *voteTx) InsertVote(ctx context.Context, vote *domain.Vote) error {
	return insertVote(ctx, t.tx, vote)
}

func (t *voteTx) GetStreakForUpdate(ctx context.Context, voterID string) (*domain.StreakState, error) {
	return getStreak(ctx, t.tx, SQLGetStreakForUpdate, voterID)
}

func (t *voteTx) UpsertStreak(ctx context.Context, state *domain.StreakState) error {
	return upsertStreak(ctx, t.tx, state)
}

func (t *voteTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrapErr(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *voteTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return repository.ErrTxClosed
	}
	return err
}
