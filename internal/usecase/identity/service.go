// Package identity implements the sign-in use case: provisioning a local
// profile for an externally authenticated user and reading it back.
package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dan-papers/internal/domain/entity"
	"dan-papers/internal/repository"
)

// Profile carries the identity fields fetched from the external provider.
type Profile struct {
	ID       string
	Name     string
	Email    string
	Image    string
	Username string
}

// Service provisions and reads user profiles.
type Service struct {
	Repo repository.UserRepository

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates an identity service backed by the given user repository.
func NewService(repo repository.UserRepository) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SignIn upserts the profile fetched from the provider and returns the stored
// user. It runs on every sign-in so profile changes at the provider propagate.
func (s *Service) SignIn(ctx context.Context, profile Profile) (*entity.User, error) {
	if strings.TrimSpace(profile.ID) == "" {
		return nil, fmt.Errorf("sign in: profile id is required")
	}

	name := profile.Name
	if strings.TrimSpace(name) == "" {
		// Some providers leave the display name unset.
		name = profile.Username
	}

	now := s.now()
	user := &entity.User{
		ID:        profile.ID,
		Name:      name,
		Email:     profile.Email,
		Image:     profile.Image,
		Username:  profile.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return user, nil
}

// Get returns the stored user with the given ID, or (nil, nil) if unknown.
func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
