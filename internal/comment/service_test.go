package comment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyPoll_Go/internal/database/memory"
	"github.com/osse101/DailyPoll_Go/internal/domain"
)

func TestPostAndList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store, store)

	q := &domain.Question{Date: domain.NewDate(2024, time.April, 1), Text: "Cats?"}
	other := &domain.Question{Date: domain.NewDate(2024, time.April, 2), Text: "Dogs?"}
	require.NoError(t, store.CreateQuestion(ctx, q))
	require.NoError(t, store.CreateQuestion(ctx, other))

	root, err := svc.Post(ctx, q.ID, "alice", gofakeit.Sentence(8), nil)
	require.NoError(t, err)

	reply, err := svc.Post(ctx, q.ID, "bob", "agreed", &root.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)

	_, err = svc.Post(ctx, other.ID, "bob", "wrong thread", &root.ID)
	assert.ErrorIs(t, err, domain.ErrCommentParent)

	missing := uuid.New()
	_, err = svc.Post(ctx, q.ID, "bob", "orphan", &missing)
	assert.ErrorIs(t, err, domain.ErrCommentParent)

	list, err := svc.List(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := svc.List(ctx, other.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPost_Validation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store, store)
	q := &domain.Question{Date: domain.NewDate(2024, time.April, 1), Text: "Cats?"}
	require.NoError(t, store.CreateQuestion(ctx, q))

	_, err := svc.Post(ctx, q.ID, "alice", "   ", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Post(ctx, q.ID, "alice", strings.Repeat("x", MaxContentLength+1), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Post(ctx, uuid.New(), "alice", "hello", nil)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}
