package memory

import "github.com/osse101/DailyPoll_Go/internal/domain"

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

func copyVote(v *domain.Vote) *domain.Vote {
	if v == nil {
		return nil
	}
	cp := *v
	if v.Correct != nil {
		c := *v.Correct
		cp.Correct = &c
	}
	return &cp
}

func copyStreak(s *domain.StreakState) *domain.StreakState {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

func copyComment(c *domain.Comment) *domain.Comment {
	if c == nil {
		return nil
	}
	cp := *c
	if c.ParentID != nil {
		id := *c.ParentID
		cp.ParentID = &id
	}
	return &cp
}
