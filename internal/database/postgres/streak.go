package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// StreakRepository implements repository.Streak for PostgreSQL
type StreakRepository struct {
	db *pgxpool.Pool
}

// NewStreakRepository creates a new StreakRepository
func NewStreakRepository(db *pgxpool.Pool) *StreakRepository {
	return &StreakRepository{db: db}
}

var _ repository.Streak = (*StreakRepository)(nil)

func (r *StreakRepository) GetStreak(ctx context.Context, voterID string) (*domain.StreakState, error) {
	return getStreak(ctx, r.db, SQLGetStreak, voterID)
}

func (r *StreakRepository) UpsertStreak(ctx context.Context, state *domain.StreakState) error {
	return upsertStreak(ctx, r.db, state)
}

func (r *StreakRepository) ListStreaks(ctx context.Context) ([]domain.StreakState, error) {
	rows, err := r.db.Query(ctx, SQLListStreaks)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListStreaks, err)
	}
	defer rows.Close()

	var streaks []domain.StreakState
	for rows.Next() {
		s, err := scanStreak(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToListStreaks, err)
		}
		streaks = append(streaks, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListStreaks, err)
	}
	return streaks, nil
}

func getStreak(ctx context.Context, q querier, sql, voterID string) (*domain.StreakState, error) {
	s, err := scanStreak(q.QueryRow(ctx, sql, voterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetStreak, err)
	}
	return s, nil
}

func upsertStreak(ctx context.Context, q querier, state *domain.StreakState) error {
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now().UTC()
	}
	_, err := q.Exec(ctx, SQLUpsertStreak,
		state.VoterID, state.CurrentStreak, state.LongestStreak, nullableDate(state.LastVotedDate), state.UpdatedAt)
	if err != nil {
		return wrapErr(ErrMsgFailedToUpsertStreak, err)
	}
	return nil
}
