// Package cache holds read-through caches in front of the repositories.
package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// SchemaVersion is the current version of the cached entry layout.
// Increment this when the cached data structure changes to auto-invalidate old entries
const SchemaVersion = "1.0"

// Config sets the cache capacity and entry lifetime
type Config struct {
	Size int
	TTL  time.Duration
}

// Stats reports cache effectiveness
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type entry struct {
	version  string
	question *domain.Question
}

// QuestionCache decorates a question repository with an LRU of questions by
// date. Absent dates are never cached; writes invalidate the affected date.
type QuestionCache struct {
	repository.Question
	lru    *expirable.LRU[domain.Date, *entry]
	byID   *expirable.LRU[uuid.UUID, domain.Date]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewQuestionCache wraps repo
func NewQuestionCache(repo repository.Question, cfg Config) *QuestionCache {
	return &QuestionCache{
		Question: repo,
		lru:      expirable.NewLRU[domain.Date, *entry](cfg.Size, nil, cfg.TTL),
		byID:     expirable.NewLRU[uuid.UUID, domain.Date](cfg.Size, nil, cfg.TTL),
	}
}

// GetQuestionByDate serves from cache when possible
func (c *QuestionCache) GetQuestionByDate(ctx context.Context, date domain.Date) (*domain.Question, error) {
	if e, ok := c.lru.Get(date); ok {
		if e.version == SchemaVersion {
			c.hits.Add(1)
			return copyQuestion(e.question), nil
		}
		c.lru.Remove(date)
	}
	c.misses.Add(1)

	q, err := c.Question.GetQuestionByDate(ctx, date)
	if err != nil || q == nil {
		return q, err
	}
	c.lru.Add(date, &entry{version: SchemaVersion, question: copyQuestion(q)})
	c.byID.Add(q.ID, date)
	return q, nil
}

// CreateQuestion invalidates the date before delegating
func (c *QuestionCache) CreateQuestion(ctx context.Context, q *domain.Question) error {
	c.lru.Remove(q.Date)
	return c.Question.CreateQuestion(ctx, q)
}

// SetWinner delegates and drops the cached copy of the question, whether or
// not the write succeeded
func (c *QuestionCache) SetWinner(ctx context.Context, questionID uuid.UUID, winner domain.Option) error {
	err := c.Question.SetWinner(ctx, questionID, winner)
	c.Invalidate(questionID)
	return err
}

// Invalidate drops the cached entry for a question id
func (c *QuestionCache) Invalidate(questionID uuid.UUID) {
	if date, ok := c.byID.Get(questionID); ok {
		c.lru.Remove(date)
		c.byID.Remove(questionID)
	}
}

// Clear removes all entries
func (c *QuestionCache) Clear() {
	c.lru.Purge()
	c.byID.Purge()
}

// GetStats returns hit and miss counters and the current size
func (c *QuestionCache) GetStats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

func copyQuestion(q *domain.Question) *domain.Question {
	if q == nil {
		return nil
	}
	cp := *q
	if q.Winner != nil {
		w := *q.Winner
		cp.Winner = &w
	}
	if q.ScoredAt != nil {
		t := *q.ScoredAt
		cp.ScoredAt = &t
	}
	return &cp
}
