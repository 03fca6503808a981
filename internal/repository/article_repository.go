package repository

import (
	"context"

	"dan-papers/internal/domain/entity"
)

type ArticleRepository interface {
	// List retrieves all published articles ordered by creation time,
	// newest first.
	List(ctx context.Context) ([]*entity.Article, error)
	// Get retrieves an article by ID.
	// Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id string) (*entity.Article, error)
	// ListByAuthor retrieves every article written by the given user,
	// newest first, regardless of published state.
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
}
