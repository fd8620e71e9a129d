// Package profile manages voter display names.
package profile

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/repository"
)

// Username rules
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Service defines the interface for profile operations
type Service interface {
	Get(ctx context.Context, voterID string) (*domain.Profile, error)
	SetUsername(ctx context.Context, voterID, username string) (*domain.Profile, error)
}

type service struct {
	repo repository.Profile
}

// NewService creates a new profile service
func NewService(repo repository.Profile) Service {
	return &service{repo: repo}
}

// Get returns the voter's profile, or an empty one if none was saved
func (s *service) Get(ctx context.Context, voterID string) (*domain.Profile, error) {
	p, err := s.repo.GetProfile(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		return &domain.Profile{VoterID: voterID}, nil
	}
	return p, nil
}

// ValidateUsername checks length and character set
func ValidateUsername(username string) error {
	if n := len(username); n < MinUsernameLength || n > MaxUsernameLength {
		return fmt.Errorf("%w: username must be %d-%d characters", domain.ErrInvalidInput, MinUsernameLength, MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username may only contain letters, digits and underscores", domain.ErrInvalidInput)
	}
	return nil
}

// SetUsername claims a username for the voter. Names are unique regardless of
// case; a name already held by another voter gives domain.ErrUsernameTaken.
func (s *service) SetUsername(ctx context.Context, voterID, username string) (*domain.Profile, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	p := &domain.Profile{VoterID: voterID, Username: username, UpdatedAt: time.Now().UTC()}
	if err := s.repo.UpsertProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
