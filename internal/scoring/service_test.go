package scoring

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyPoll_Go/internal/database/memory"
	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/event"
)

var day = domain.NewDate(2024, time.January, 1)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

// flakyVotes fails SetCorrectness for the listed vote ids until healed
type flakyVotes struct {
	*memory.Store
	mu     sync.Mutex
	failOn map[uuid.UUID]bool
}

func (f *flakyVotes) SetCorrectness(ctx context.Context, voteID uuid.UUID, correct bool) error {
	f.mu.Lock()
	fail := f.failOn[voteID]
	f.mu.Unlock()
	if fail {
		return fmt.Errorf("%s: %w", "set correctness", domain.ErrStoreUnavailable)
	}
	return f.Store.SetCorrectness(ctx, voteID, correct)
}

func (f *flakyVotes) heal() {
	f.mu.Lock()
	f.failOn = nil
	f.mu.Unlock()
}

func seed(t *testing.T, store *memory.Store, date domain.Date, votes ...[2]domain.Option) (*domain.Question, []*domain.Vote) {
	t.Helper()
	ctx := context.Background()
	q := &domain.Question{Date: date, Text: "Cats or dogs?", OptionA: "Cats", OptionB: "Dogs"}
	require.NoError(t, store.CreateQuestion(ctx, q))

	out := make([]*domain.Vote, 0, len(votes))
	for i, cp := range votes {
		v := &domain.Vote{VoterID: fmt.Sprintf("voter-%d", i), QuestionID: q.ID, Choice: cp[0], Prediction: cp[1]}
		require.NoError(t, store.InsertVote(ctx, v))
		out = append(out, v)
	}
	return q, out
}

func correctness(t *testing.T, store *memory.Store, v *domain.Vote) *bool {
	t.Helper()
	got, err := store.GetVote(context.Background(), v.VoterID, v.QuestionID)
	require.NoError(t, err)
	return got.Correct
}

func TestScore_CatsAndDogs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	pub := &recordingPublisher{}
	_, votes := seed(t, store, day,
		[2]domain.Option{domain.OptionA, domain.OptionA},
		[2]domain.Option{domain.OptionA, domain.OptionA},
		[2]domain.Option{domain.OptionB, domain.OptionB},
	)

	res, err := NewService(store, store, pub).Score(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, domain.OptionA, res.Winner)
	assert.Equal(t, domain.Tally{A: 2, B: 1}, res.Tally)
	require.NotNil(t, res.Grading)
	assert.Equal(t, 2, res.Grading.Correct)
	assert.Equal(t, 1, res.Grading.Incorrect)

	q, err := store.GetQuestionByDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "Cats", q.Label(*q.Winner))

	assert.True(t, *correctness(t, store, votes[0]))
	assert.True(t, *correctness(t, store, votes[1]))
	assert.False(t, *correctness(t, store, votes[2]))

	assert.Equal(t, []event.Type{event.QuestionScored, event.GradingCompleted}, pub.Types())
}

func TestScore_WinnerLaw(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want domain.Option
	}{
		{"tie resolves to A", 2, 2, domain.OptionA},
		{"single each", 1, 1, domain.OptionA},
		{"A majority", 3, 1, domain.OptionA},
		{"B majority", 1, 3, domain.OptionB},
		{"only B", 0, 1, domain.OptionB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			var votes [][2]domain.Option
			for i := 0; i < tt.a; i++ {
				votes = append(votes, [2]domain.Option{domain.OptionA, domain.OptionB})
			}
			for i := 0; i < tt.b; i++ {
				votes = append(votes, [2]domain.Option{domain.OptionB, domain.OptionA})
			}
			seed(t, store, day, votes...)

			res, err := NewService(store, store, nil).Score(context.Background(), day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Winner)
		})
	}
}

func TestScore_GradingLaw(t *testing.T) {
	store := memory.NewStore()
	_, votes := seed(t, store, day,
		[2]domain.Option{domain.OptionB, domain.OptionA},
		[2]domain.Option{domain.OptionB, domain.OptionB},
		[2]domain.Option{domain.OptionA, domain.OptionB},
	)

	res, err := NewService(store, store, nil).Score(context.Background(), day)
	require.NoError(t, err)
	require.Equal(t, domain.OptionB, res.Winner)

	for _, v := range votes {
		got := correctness(t, store, v)
		require.NotNil(t, got)
		assert.Equal(t, v.Prediction == res.Winner, *got, "vote %s", v.VoterID)
	}
}

func TestScore_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seed(t, store, day,
		[2]domain.Option{domain.OptionB, domain.OptionA},
		[2]domain.Option{domain.OptionB, domain.OptionA},
	)
	svc := NewService(store, store, nil)

	first, err := svc.Score(ctx, day)
	require.NoError(t, err)

	// A late vote slipping in must not change the recorded winner
	q, _ := store.GetQuestionByDate(ctx, day)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.InsertVote(ctx, &domain.Vote{VoterID: fmt.Sprintf("late-%d", i), QuestionID: q.ID, Choice: domain.OptionA, Prediction: domain.OptionA}))
	}

	second, err := svc.Score(ctx, day)
	assert.ErrorIs(t, err, domain.ErrAlreadyScored)
	require.NotNil(t, second)
	assert.Equal(t, first.Winner, second.Winner)

	q, _ = store.GetQuestionByDate(ctx, day)
	assert.Equal(t, domain.OptionB, *q.Winner)
}

func TestScore_QuestionNotFound(t *testing.T) {
	store := memory.NewStore()
	_, err := NewService(store, store, nil).Score(context.Background(), day)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestScore_NoVotes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seed(t, store, day)

	_, err := NewService(store, store, nil).Score(ctx, day)
	assert.ErrorIs(t, err, domain.ErrNoVotesRecorded)

	q, err := store.GetQuestionByDate(ctx, day)
	require.NoError(t, err)
	assert.Nil(t, q.Winner)
}

func TestScore_PartialGradingThenResume(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, votes := seed(t, store, day,
		[2]domain.Option{domain.OptionA, domain.OptionA},
		[2]domain.Option{domain.OptionA, domain.OptionB},
		[2]domain.Option{domain.OptionB, domain.OptionA},
	)
	flaky := &flakyVotes{Store: store, failOn: map[uuid.UUID]bool{votes[1].ID: true}}
	pub := &recordingPublisher{}
	svc := NewService(store, flaky, pub)

	res, err := svc.Score(ctx, day)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPartialGrading)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, domain.OptionA, res.Winner)
	assert.Equal(t, []uuid.UUID{votes[1].ID}, res.Grading.Ungraded)
	assert.Nil(t, correctness(t, store, votes[1]))

	flaky.heal()

	res, err = svc.Score(ctx, day)
	assert.ErrorIs(t, err, domain.ErrAlreadyScored)
	assert.NotErrorIs(t, err, domain.ErrPartialGrading)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
	require.NotNil(t, res.Grading)
	assert.Equal(t, 1, res.Grading.Graded)
	assert.Equal(t, 2, res.Grading.Skipped)
	assert.False(t, *correctness(t, store, votes[1]))
}

func TestGradeQuestion(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	q, _ := seed(t, store, day, [2]domain.Option{domain.OptionA, domain.OptionA})
	svc := NewService(store, store, nil)

	_, err := svc.GradeQuestion(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrWinnerNotSet)

	_, err = svc.GradeQuestion(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	require.NoError(t, store.SetWinner(ctx, q.ID, domain.OptionA))
	res, err := svc.GradeQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Correct)
}

func TestScoringTarget(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on Jan 2 is still Jan 1 in New York
	now := time.Date(2024, time.January, 2, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.NewDate(2023, time.December, 31), ScoringTarget(now, loc))
	assert.Equal(t, domain.NewDate(2024, time.January, 1), ScoringTarget(now, time.UTC))
}

func TestScore_StoreUnavailable(t *testing.T) {
	svc := NewService(failingQuestions{}, memory.NewStore(), nil)
	_, err := svc.Score(context.Background(), day)
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

// unreachableVotes fails ListVotes while down is set
type unreachableVotes struct {
	*memory.Store
	down bool
}

func (u *unreachableVotes) ListVotes(ctx context.Context, questionID uuid.UUID) ([]domain.Vote, error) {
	if u.down {
		return nil, fmt.Errorf("list: %w", domain.ErrStoreUnavailable)
	}
	return u.Store.ListVotes(ctx, questionID)
}

func TestScore_ResumeDuringOutageIsNotAlreadyScored(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, votes := seed(t, store, day, [2]domain.Option{domain.OptionA, domain.OptionA})
	flaky := &unreachableVotes{Store: store, down: true}
	svc := NewService(store, flaky, nil)

	_, err := svc.Score(ctx, day)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	// The winner is stored, grading never ran
	_, err = svc.Score(ctx, day)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrAlreadyScored)
	assert.Nil(t, correctness(t, store, votes[0]))

	flaky.down = false
	res, err := svc.Score(ctx, day)
	assert.ErrorIs(t, err, domain.ErrAlreadyScored)
	require.NotNil(t, res.Grading)
	assert.Equal(t, 1, res.Grading.Graded)
	assert.True(t, *correctness(t, store, votes[0]))
}

type failingQuestions struct{ *memory.Store }

func (failingQuestions) GetQuestionByDate(context.Context, domain.Date) (*domain.Question, error) {
	return nil, fmt.Errorf("dial tcp: %w", domain.ErrStoreUnavailable)
}
