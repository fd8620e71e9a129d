package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// wrapErr adds msg context and tags connectivity failures with domain.ErrStoreUnavailable
func wrapErr(msg string, err error) error {
	if isTransient(err) {
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx connection exceptions, 57P0x operator intervention (shutdown)
		return (len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08") || pgErr.Code == "57P01" || pgErr.Code == "57P03"
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) || pgconn.SafeToRetry(err)
}

// uniqueViolation reports whether err is a unique violation on the named constraint
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func toDate(t time.Time) domain.Date {
	return domain.DateOf(t, time.UTC)
}

func optionPtr(s *string) *domain.Option {
	if s == nil {
		return nil
	}
	o := domain.Option(*s)
	return &o
}

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var (
		q      domain.Question
		date   time.Time
		winner *string
	)
	if err := row.Scan(&q.ID, &date, &q.Text, &q.OptionA, &q.OptionB, &winner, &q.ScoredAt, &q.CreatedAt); err != nil {
		return nil, err
	}
	q.Date = toDate(date)
	q.Winner = optionPtr(winner)
	return &q, nil
}

func scanVote(row pgx.Row) (*domain.Vote, error) {
	var (
		v                  domain.Vote
		choice, prediction string
	)
	if err := row.Scan(&v.ID, &v.VoterID, &v.QuestionID, &choice, &prediction, &v.Correct, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.Choice = domain.Option(choice)
	v.Prediction = domain.Option(prediction)
	return &v, nil
}

func scanVotes(rows pgx.Rows) ([]domain.Vote, error) {
	defer rows.Close()
	var votes []domain.Vote
	for rows.Next() {
		v, err := scanVote(rows)
		if err != nil {
			return nil, err
		}
		votes = append(votes, *v)
	}
	return votes, rows.Err()
}

func scanStreak(row pgx.Row) (*domain.StreakState, error) {
	var (
		s        domain.StreakState
		lastDate *time.Time
	)
	if err := row.Scan(&s.VoterID, &s.CurrentStreak, &s.LongestStreak, &lastDate, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if lastDate != nil {
		s.LastVotedDate = toDate(*lastDate)
	}
	return &s, nil
}

// nullableDate maps the zero date to SQL NULL
func nullableDate(d domain.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Time()
}
