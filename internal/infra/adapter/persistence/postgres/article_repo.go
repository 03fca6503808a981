package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"dan-papers/internal/domain/entity"
	"dan-papers/internal/repository"
)

const articleColumns = `id, title, subtitle, author_id, author_name, author_image,
       display_date, read_time, tags, image, content, published, created_at, updated_at`

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(row interface{ Scan(...any) error }) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(&article.ID, &article.Title, &article.Subtitle,
		&article.AuthorID, &article.AuthorName, &article.AuthorImage,
		&article.Date, &article.ReadTime, pq.Array(&article.Tags),
		&article.Image, &article.Content, &article.Published,
		&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE published = TRUE
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 50)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE author_id = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ListByAuthor: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 20)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByAuthor: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (id, title, subtitle, author_id, author_name, author_image,
        display_date, read_time, tags, image, content, published, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Subtitle,
		article.AuthorID, article.AuthorName, article.AuthorImage,
		article.Date, article.ReadTime, pq.Array(article.Tags),
		article.Image, article.Content, article.Published,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title        = $1,
       subtitle     = $2,
       read_time    = $3,
       tags         = $4,
       image        = $5,
       content      = $6,
       published    = $7,
       updated_at   = $8
WHERE id = $9`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Subtitle, article.ReadTime,
		pq.Array(article.Tags), article.Image, article.Content,
		article.Published, article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}
