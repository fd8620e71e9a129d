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

// QuestionRepository implements repository.Question for PostgreSQL
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

var _ repository.Question = (*QuestionRepository)(nil)

func (r *QuestionRepository) GetQuestionByDate(ctx context.Context, date domain.Date) (*domain.Question, error) {
	return getQuestion(ctx, r.db, SQLGetQuestionByDate, date.Time())
}

func (r *QuestionRepository) GetQuestionByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return getQuestion(ctx, r.db, SQLGetQuestionByID, id)
}

func getQuestion(ctx context.Context, q querier, sql string, arg any) (*domain.Question, error) {
	question, err := scanQuestion(q.QueryRow(ctx, sql, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetQuestion, err)
	}
	return question, nil
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx, SQLInsertQuestion, q.ID, q.Date.Time(), q.Text, q.OptionA, q.OptionB, q.CreatedAt)
	if err != nil {
		if uniqueViolation(err, ConstraintQuestionsDate) {
			return fmt.Errorf("%w: %s", domain.ErrQuestionExists, q.Date)
		}
		return wrapErr(ErrMsgFailedToInsertQuestion, err)
	}
	return nil
}

// SetWinner is a conditional write: zero affected rows means the question is
// missing or already scored, and the two cases are told apart afterwards.
func (r *QuestionRepository) SetWinner(ctx context.Context, questionID uuid.UUID, winner domain.Option) error {
	tag, err := r.db.Exec(ctx, SQLSetWinner, questionID, string(winner))
	if err != nil {
		return wrapErr(ErrMsgFailedToSetWinner, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, SQLQuestionExists, questionID).Scan(&exists); err != nil {
		return wrapErr(ErrMsgFailedToSetWinner, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, questionID)
	}
	return fmt.Errorf("%w: %s", domain.ErrAlreadyScored, questionID)
}

func (r *QuestionRepository) ListQuestions(ctx context.Context, limit int) ([]domain.Question, error) {
	rows, err := r.db.Query(ctx, SQLListQuestions, limit)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListQuestions, err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToListQuestions, err)
		}
		questions = append(questions, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListQuestions, err)
	}
	return questions, nil
}
