// Package article implements the article management use cases: the public
// feed, single-article reads, and the authenticated write path with
// ownership checks.
package article

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"dan-papers/internal/domain/entity"
	"dan-papers/internal/repository"
)

// displayDateLayout is the human-facing publication date stored alongside
// the machine timestamps.
const displayDateLayout = "Jan 2, 2006"

// SeedStore is the read-only source of bundled articles merged into reads.
type SeedStore interface {
	All() []*entity.Article
	Get(id string) *entity.Article
}

// CreateInput represents the input parameters for publishing a new article.
type CreateInput struct {
	Title    string
	Subtitle string
	Content  string
	Tags     []string
	Image    string
}

// UpdateInput represents the input parameters for updating an existing article.
type UpdateInput struct {
	ID       string
	Title    string
	Subtitle string
	Content  string
	Tags     []string
	Image    string
}

// Service provides article management use cases. Persisted articles live in
// the repository; seed articles come from the read-only store and are merged
// at read time, never written.
type Service struct {
	Repo   repository.ArticleRepository
	Seed   SeedStore
	Admins map[string]bool

	// Now is the clock, injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates an article service. adminUsernames are external
// provider logins allowed to delete any non-seed article.
func NewService(repo repository.ArticleRepository, seedStore SeedStore, adminUsernames []string) *Service {
	admins := make(map[string]bool, len(adminUsernames))
	for _, name := range adminUsernames {
		admins[strings.ToLower(name)] = true
	}
	return &Service{Repo: repo, Seed: seedStore, Admins: admins, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns the feed: persisted published articles merged with the seed
// bundle, newest first. Seed articles carry no creation timestamp and sort
// to the end of the feed.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	persisted, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	merged := append(persisted, s.Seed.All()...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}

// Get returns the article with the given ID from either store.
// Returns ErrArticleNotFound if neither store has it.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	found, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if found != nil {
		return found, nil
	}
	if seeded := s.Seed.Get(id); seeded != nil {
		return seeded, nil
	}
	return nil, ErrArticleNotFound
}

// ListByAuthor returns every persisted article owned by the caller, newest
// first. Seed articles have no owner and never appear here.
func (s *Service) ListByAuthor(ctx context.Context, caller *entity.User) ([]*entity.Article, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	articles, err := s.Repo.ListByAuthor(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return articles, nil
}

// Create publishes a new article owned by the caller. The owner is always
// stamped from the authenticated identity, never from client input.
func (s *Service) Create(ctx context.Context, caller *entity.User, input CreateInput) (*entity.Article, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "content is required"}
	}
	if err := entity.ValidateImageURL(input.Image); err != nil {
		return nil, err
	}

	now := s.now()
	created := &entity.Article{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		AuthorID:    caller.ID,
		AuthorName:  caller.Name,
		AuthorImage: caller.Image,
		Date:        now.Format(displayDateLayout),
		ReadTime:    entity.ComputeReadTime(input.Content),
		Tags:        input.Tags,
		Image:       input.Image,
		Content:     input.Content,
		Published:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

// Update edits an article's content fields. Only the owner may update;
// read time and the update timestamp are recomputed.
func (s *Service) Update(ctx context.Context, caller *entity.User, input UpdateInput) (*entity.Article, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	target, err := s.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(caller, target, ActionUpdate, s.Admins); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "content is required"}
	}
	if err := entity.ValidateImageURL(input.Image); err != nil {
		return nil, err
	}

	target.Title = input.Title
	target.Subtitle = input.Subtitle
	target.Content = input.Content
	target.Tags = input.Tags
	target.Image = input.Image
	target.ReadTime = entity.ComputeReadTime(input.Content)
	target.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return target, nil
}

// Remove deletes an article. The owner or an allow-listed admin may delete;
// seed articles are immutable through this path.
func (s *Service) Remove(ctx context.Context, caller *entity.User, id string) error {
	if caller == nil {
		return ErrUnauthenticated
	}

	target, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := Authorize(caller, target, ActionDelete, s.Admins); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
