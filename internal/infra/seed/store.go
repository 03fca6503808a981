// Package seed provides the read-only store of articles bundled with the
// binary. Seed articles share the identifier namespace with persisted
// articles but are never written: the normal write path rejects them and the
// store hands out copies so callers cannot mutate the fixtures.
package seed

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"dan-papers/internal/domain/entity"
)

//go:embed articles.yaml
var articlesYAML []byte

type seedArticle struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	AuthorName string   `yaml:"author_name"`
	Date       string   `yaml:"date"`
	ReadTime   int      `yaml:"read_time"`
	Tags       []string `yaml:"tags"`
	Image      string   `yaml:"image"`
	Content    string   `yaml:"content"`
}

// Store holds the bundled articles, keyed by ID.
type Store struct {
	articles map[string]*entity.Article
	ordered  []*entity.Article
}

// Load parses the embedded fixtures. It fails only on a malformed bundle,
// which means a broken build rather than a runtime condition.
func Load() (*Store, error) {
	return load(articlesYAML)
}

func load(raw []byte) (*Store, error) {
	var parsed []seedArticle
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("seed: unmarshal: %w", err)
	}

	store := &Store{articles: make(map[string]*entity.Article, len(parsed))}
	for _, sa := range parsed {
		if sa.ID == "" {
			return nil, fmt.Errorf("seed: article %q has no id", sa.Title)
		}
		if _, dup := store.articles[sa.ID]; dup {
			return nil, fmt.Errorf("seed: duplicate id %q", sa.ID)
		}
		article := &entity.Article{
			ID:         sa.ID,
			Title:      sa.Title,
			Subtitle:   sa.Subtitle,
			AuthorName: sa.AuthorName,
			Date:       sa.Date,
			ReadTime:   sa.ReadTime,
			Tags:       sa.Tags,
			Image:      sa.Image,
			Content:    sa.Content,
			Published:  true,
		}
		if article.ReadTime == 0 {
			article.ReadTime = entity.ComputeReadTime(article.Content)
		}
		store.articles[sa.ID] = article
		store.ordered = append(store.ordered, article)
	}

	sort.SliceStable(store.ordered, func(i, j int) bool {
		return store.ordered[i].ID < store.ordered[j].ID
	})
	return store, nil
}

// All returns copies of every seed article in stable order.
func (s *Store) All() []*entity.Article {
	out := make([]*entity.Article, 0, len(s.ordered))
	for _, article := range s.ordered {
		out = append(out, copyArticle(article))
	}
	return out
}

// Get returns a copy of the seed article with the given ID, or nil.
func (s *Store) Get(id string) *entity.Article {
	article, ok := s.articles[id]
	if !ok {
		return nil
	}
	return copyArticle(article)
}

func copyArticle(a *entity.Article) *entity.Article {
	dup := *a
	dup.Tags = append([]string(nil), a.Tags...)
	return &dup
}
