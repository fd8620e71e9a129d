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

// ProfileRepository implements repository.Profile for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ repository.Profile = (*ProfileRepository)(nil)

func (r *ProfileRepository) GetProfile(ctx context.Context, voterID string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRow(ctx, SQLGetProfile, voterID).Scan(&p.VoterID, &p.Username, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetProfile, err)
	}
	return &p, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	if _, err := r.db.Exec(ctx, SQLUpsertProfile, p.VoterID, p.Username, p.UpdatedAt); err != nil {
		if uniqueViolation(err, ConstraintProfilesUsername) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, p.Username)
		}
		return wrapErr(ErrMsgFailedToUpsertProfile, err)
	}
	return nil
}

func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.Query(ctx, SQLListProfiles)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListProfiles, err)
	}
	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Profile, error) {
		var p domain.Profile
		err := row.Scan(&p.VoterID, &p.Username, &p.UpdatedAt)
		return p, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListProfiles, err)
	}
	return profiles, nil
}

// CommentRepository implements repository.Comment for PostgreSQL
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

var _ repository.Comment = (*CommentRepository)(nil)

func (r *CommentRepository) CreateComment(ctx context.Context, c *domain.Comment) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx, SQLInsertComment, c.ID, c.QuestionID, c.VoterID, c.ParentID, c.Content, c.CreatedAt)
	if err != nil {
		return wrapErr(ErrMsgFailedToInsertComment, err)
	}
	return nil
}

func (r *CommentRepository) GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, SQLGetComment, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetComment, err)
	}
	return c, nil
}

func (r *CommentRepository) ListComments(ctx context.Context, questionID uuid.UUID) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, SQLListComments, questionID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListComments, err)
	}
	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		c, err := scanComment(row)
		if err != nil {
			return domain.Comment{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListComments, err)
	}
	return comments, nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.QuestionID, &c.VoterID, &c.ParentID, &c.Content, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
