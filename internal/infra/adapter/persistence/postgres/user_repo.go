package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dan-papers/internal/domain/entity"
	"dan-papers/internal/repository"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Get(ctx context.Context, id string) (*entity.User, error) {
	const query = `
SELECT id, name, email, image, username, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Image,
			&user.Username, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) Upsert(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (id, name, email, image, username, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
       name       = EXCLUDED.name,
       email      = EXCLUDED.email,
       image      = EXCLUDED.image,
       username   = EXCLUDED.username,
       updated_at = EXCLUDED.updated_at`
	_, err := repo.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Image,
		user.Username, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}
