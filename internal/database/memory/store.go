// Package memory is an in-process implementation of every repository
// interface. It enforces the same uniqueness and write-once rules as the
// PostgreSQL schema and is used by tests and the STORE_BACKEND=memory mode.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// Store holds all poll state behind a single mutex
type Store struct {
	mu sync.Mutex

	questions      map[uuid.UUID]*domain.Question
	questionByDate map[domain.Date]uuid.UUID
	votes          map[uuid.UUID]*domain.Vote
	voteByVoter    map[voteKey]uuid.UUID
	streaks        map[string]*domain.StreakState
	profiles       map[string]*domain.Profile
	usernames      map[string]string
	comments       map[uuid.UUID]*domain.Comment

	now func() time.Time
}

type voteKey struct {
	voterID    string
	questionID uuid.UUID
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		questions:      make(map[uuid.UUID]*domain.Question),
		questionByDate: make(map[domain.Date]uuid.UUID),
		votes:          make(map[uuid.UUID]*domain.Vote),
		voteByVoter:    make(map[voteKey]uuid.UUID),
		streaks:        make(map[string]*domain.StreakState),
		profiles:       make(map[string]*domain.Profile),
		usernames:      make(map[string]string),
		comments:       make(map[uuid.UUID]*domain.Comment),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

var (
	_ repository.Question = (*Store)(nil)
	_ repository.Vote     = (*Store)(nil)
	_ repository.Streak   = (*Store)(nil)
	_ repository.Profile  = (*Store)(nil)
	_ repository.Comment  = (*Store)(nil)
)

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// ---- Questions ----

func (s *Store) GetQuestionByDate(ctx context.Context, date domain.Date) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.questionByDate[date]
	if !ok {
		return nil, nil
	}
	return copyQuestion(s.questions[id]), nil
}

func (s *Store) GetQuestionByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyQuestion(s.questions[id]), nil
}

func (s *Store) CreateQuestion(ctx context.Context, q *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.questionByDate[q.Date]; taken {
		return fmt.Errorf("%w: %s", domain.ErrQuestionExists, q.Date)
	}
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = s.now()
	}
	stored := copyQuestion(q)
	stored.Winner, stored.ScoredAt = nil, nil
	s.questions[q.ID] = stored
	s.questionByDate[q.Date] = q.ID
	return nil
}

func (s *Store) SetWinner(ctx context.Context, questionID uuid.UUID, winner domain.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.questions[questionID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, questionID)
	}
	if q.Winner != nil {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyScored, questionID)
	}
	w := winner
	now := s.now()
	q.Winner = &w
	q.ScoredAt = &now
	return nil
}

func (s *Store) ListQuestions(ctx context.Context, limit int) ([]domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, *copyQuestion(q))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---- Votes ----

func (s *Store) ListVotes(ctx context.Context, questionID uuid.UUID) ([]domain.Vote, error) {
	return s.filterVotes(func(v *domain.Vote) bool { return v.QuestionID == questionID }), nil
}

func (s *Store) ListGradedVotes(ctx context.Context) ([]domain.Vote, error) {
	return s.filterVotes(func(v *domain.Vote) bool { return v.Correct != nil }), nil
}

func (s *Store) ListVotesByVoter(ctx context.Context, voterID string) ([]domain.Vote, error) {
	votes := s.filterVotes(func(v *domain.Vote) bool { return v.VoterID == voterID })
	// newest first
	for i, j := 0, len(votes)-1; i < j; i, j = i+1, j-1 {
		votes[i], votes[j] = votes[j], votes[i]
	}
	return votes, nil
}

func (s *Store) filterVotes(keep func(*domain.Vote) bool) []domain.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Vote
	for _, v := range s.votes {
		if keep(v) {
			out = append(out, *copyVote(v))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (s *Store) GetVote(ctx context.Context, voterID string, questionID uuid.UUID) (*domain.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.voteByVoter[voteKey{voterID, questionID}]
	if !ok {
		return nil, nil
	}
	return copyVote(s.votes[id]), nil
}

func (s *Store) InsertVote(ctx context.Context, vote *domain.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertVoteLocked(vote)
}

func (s *Store) insertVoteLocked(vote *domain.Vote) error {
	key := voteKey{vote.VoterID, vote.QuestionID}
	if _, dup := s.voteByVoter[key]; dup {
		return fmt.Errorf("%w: voter %s question %s", domain.ErrDuplicateVote, vote.VoterID, vote.QuestionID)
	}
	if _, ok := s.questions[vote.QuestionID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, vote.QuestionID)
	}
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = s.now()
	}
	stored := copyVote(vote)
	stored.Correct = nil
	s.votes[vote.ID] = stored
	s.voteByVoter[key] = vote.ID
	return nil
}

// SetCorrectness leaves an already graded vote untouched
func (s *Store) SetCorrectness(ctx context.Context, voteID uuid.UUID, correct bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.votes[voteID]
	if !ok {
		return fmt.Errorf("vote %s not found", voteID)
	}
	if v.Correct == nil {
		c := correct
		v.Correct = &c
	}
	return nil
}

func (s *Store) CountVotes(ctx context.Context, questionID uuid.UUID) (domain.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t domain.Tally
	for _, v := range s.votes {
		if v.QuestionID == questionID {
			t.Add(v.Choice)
		}
	}
	return t, nil
}

// ---- Streaks ----

func (s *Store) GetStreak(ctx context.Context, voterID string) (*domain.StreakState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyStreak(s.streaks[voterID]), nil
}

func (s *Store) UpsertStreak(ctx context.Context, state *domain.StreakState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertStreakLocked(state)
	return nil
}

func (s *Store) upsertStreakLocked(state *domain.StreakState) {
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = s.now()
	}
	s.streaks[state.VoterID] = copyStreak(state)
}

func (s *Store) ListStreaks(ctx context.Context) ([]domain.StreakState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.StreakState, 0, len(s.streaks))
	for _, st := range s.streaks {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VoterID < out[j].VoterID })
	return out, nil
}

// ---- Profiles ----

func (s *Store) GetProfile(ctx context.Context, voterID string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[voterID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *Store) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(p.Username)
	if owner, taken := s.usernames[key]; taken && owner != p.VoterID {
		return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, p.Username)
	}
	if prev, ok := s.profiles[p.VoterID]; ok {
		delete(s.usernames, strings.ToLower(prev.Username))
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = s.now()
	}
	cp := *p
	s.profiles[p.VoterID] = &cp
	s.usernames[key] = p.VoterID
	return nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, *p)
	}
	return out, nil
}

// ---- Comments ----

func (s *Store) CreateComment(ctx context.Context, c *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[c.QuestionID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, c.QuestionID)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	s.comments[c.ID] = copyComment(c)
	return nil
}

func (s *Store) GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyComment(s.comments[id]), nil
}

func (s *Store) ListComments(ctx context.Context, questionID uuid.UUID) ([]domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Comment
	for _, c := range s.comments {
		if c.QuestionID == questionID {
			out = append(out, *copyComment(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
