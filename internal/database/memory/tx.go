package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// BeginVoteTx locks the store until Commit or Rollback. Writes are staged and
// only applied on Commit, so a rolled back transaction leaves no trace.
func (s *Store) BeginVoteTx(ctx context.Context) (repository.VoteTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	s.mu.Lock()
	return &voteTx{store: s, streaks: make(map[string]*domain.StreakState)}, nil
}

type voteTx struct {
	store   *Store
	closed  bool
	votes   []*domain.Vote
	streaks map[string]*domain.StreakState
}

func (t *voteTx) GetQuestionForShare(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	if t.closed {
		return nil, repository.ErrTxClosed
	}
	return copyQuestion(t.store.questions[questionID]), nil
}

func (t *voteTx) InsertVote(ctx context.Context, vote *domain.Vote) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	key := voteKey{vote.VoterID, vote.QuestionID}
	if _, dup := t.store.voteByVoter[key]; dup {
		return fmt.Errorf("%w: voter %s question %s", domain.ErrDuplicateVote, vote.VoterID, vote.QuestionID)
	}
	for _, staged := range t.votes {
		if staged.VoterID == vote.VoterID && staged.QuestionID == vote.QuestionID {
			return fmt.Errorf("%w: voter %s question %s", domain.ErrDuplicateVote, vote.VoterID, vote.QuestionID)
		}
	}
	if _, ok := t.store.questions[vote.QuestionID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, vote.QuestionID)
	}
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = t.store.now()
	}
	t.votes = append(t.votes, copyVote(vote))
	return nil
}

func (t *voteTx) GetStreakForUpdate(ctx context.Context, voterID string) (*domain.StreakState, error) {
	if t.closed {
		return nil, repository.ErrTxClosed
	}
	if staged, ok := t.streaks[voterID]; ok {
		return copyStreak(staged), nil
	}
	return copyStreak(t.store.streaks[voterID]), nil
}

func (t *voteTx) UpsertStreak(ctx context.Context, state *domain.StreakState) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = t.store.now()
	}
	t.streaks[state.VoterID] = copyStreak(state)
	return nil
}

func (t *voteTx) Commit(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	defer t.store.mu.Unlock()

	for _, v := range t.votes {
		if err := t.store.insertVoteLocked(v); err != nil {
			return err
		}
	}
	for _, st := range t.streaks {
		t.store.upsertStreakLocked(st)
	}
	return nil
}

func (t *voteTx) Rollback(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	t.store.mu.Unlock()
	return nil
}
