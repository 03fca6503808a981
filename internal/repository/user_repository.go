package repository

import (
	"context"

	"dan-papers/internal/domain/entity"
)

type UserRepository interface {
	// Get retrieves a user by ID.
	// Returns (nil, nil) if the user is not found.
	Get(ctx context.Context, id string) (*entity.User, error)
	// Upsert inserts the user or refreshes its profile fields when a row
	// with the same ID already exists. Sign-in calls this on every visit.
	Upsert(ctx context.Context, user *entity.User) error
}
