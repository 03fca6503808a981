package legacy_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dan-papers/internal/domain/entity"
	legacyhttp "dan-papers/internal/handler/http/legacy"
	infralegacy "dan-papers/internal/infra/legacy"
	artUC "dan-papers/internal/usecase/article"
	legacyUC "dan-papers/internal/usecase/legacy"
)

type stubRepo struct {
	articles map[string]*entity.Article
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) { return nil, nil }
func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	return s.articles[id], nil
}
func (s *stubRepo) ListByAuthor(_ context.Context, _ string) ([]*entity.Article, error) {
	return nil, nil
}
func (s *stubRepo) Create(_ context.Context, _ *entity.Article) error { return nil }
func (s *stubRepo) Update(_ context.Context, _ *entity.Article) error { return nil }
func (s *stubRepo) Delete(_ context.Context, _ string) error          { return nil }

type emptySeed struct{}

func (emptySeed) All() []*entity.Article      { return nil }
func (emptySeed) Get(_ string) *entity.Article { return nil }

type stubClient struct {
	login   string
	name    string
	content string
	sha     string

	updated    bool
	newContent string
}

func (s *stubClient) GetUser(_ context.Context, _ string) (*infralegacy.User, error) {
	return &infralegacy.User{Login: s.login, Name: s.name}, nil
}

func (s *stubClient) FetchFileContent(_ context.Context, _ infralegacy.Config) (*infralegacy.File, error) {
	return &infralegacy.File{Content: s.content, Sha: s.sha}, nil
}

func (s *stubClient) UpdateFileContent(_ context.Context, _ infralegacy.Config, newContent, _, _ string) error {
	s.updated = true
	s.newContent = newContent
	return nil
}

func newHandler(article *entity.Article, client *stubClient) legacyhttp.DeleteHandler {
	repo := &stubRepo{articles: map[string]*entity.Article{}}
	if article != nil {
		repo.articles[article.ID] = article
	}
	return legacyhttp.DeleteHandler{
		Articles: artUC.NewService(repo, emptySeed{}, nil),
		Svc:      legacyUC.NewService(client, infralegacy.Config{Owner: "o", Repo: "r", Path: "constants.ts"}),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

func TestDeleteLegacyArticleByAuthor(t *testing.T) {
	article := &entity.Article{ID: "old-paper", Title: "Old Paper", AuthorID: "x", AuthorName: "Alex"}
	client := &stubClient{
		login:   "alexgh",
		name:    "Alex",
		content: fmt.Sprintf(`export const ARTICLES = [{ id: %q, title: "Old Paper" }];`, "old-paper"),
		sha:     "abc123",
	}
	handler := newHandler(article, client)

	req := httptest.NewRequest(http.MethodDelete, "/legacy/articles/old-paper", nil)
	req.Header.Set(legacyhttp.TokenHeader, "ghp_token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, body = %s", rr.Code, rr.Body.String())
	}
	if !client.updated {
		t.Error("file was not updated")
	}

	var resp legacyhttp.DeleteResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Transcript) == 0 || resp.Transcript[len(resp.Transcript)-1] != "> Success." {
		t.Errorf("transcript = %v", resp.Transcript)
	}
	if resp.Error != "" {
		t.Errorf("error = %q, want empty", resp.Error)
	}
}

func TestDeleteSiteOwnerArticleDenied(t *testing.T) {
	article := &entity.Article{ID: "dans-paper", Title: "Dans Paper", AuthorID: "x", AuthorName: "Dan"}
	client := &stubClient{login: "dan", name: "Dan"}
	handler := newHandler(article, client)

	req := httptest.NewRequest(http.MethodDelete, "/legacy/articles/dans-paper", nil)
	req.Header.Set(legacyhttp.TokenHeader, "ghp_token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusForbidden)
	}
	if client.updated {
		t.Error("file must not be written on authorization failure")
	}

	var resp legacyhttp.DeleteResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// Raw error text is surfaced on this endpoint.
	if !strings.Contains(resp.Error, "you cannot delete the owner's papers") {
		t.Errorf("error = %q", resp.Error)
	}
	last := resp.Transcript[len(resp.Transcript)-1]
	if !strings.HasPrefix(last, "FATAL: ") {
		t.Errorf("transcript last line = %q", last)
	}
}

func TestDeleteRequiresToken(t *testing.T) {
	handler := newHandler(&entity.Article{ID: "a", AuthorName: "Alex"}, &stubClient{})

	req := httptest.NewRequest(http.MethodDelete, "/legacy/articles/a", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func newPublishHandler(article *entity.Article, client *stubClient) legacyhttp.PublishHandler {
	repo := &stubRepo{articles: map[string]*entity.Article{}}
	if article != nil {
		repo.articles[article.ID] = article
	}
	return legacyhttp.PublishHandler{
		Articles: artUC.NewService(repo, emptySeed{}, nil),
		Svc:      legacyUC.NewService(client, infralegacy.Config{Owner: "o", Repo: "r", Path: "constants.ts"}),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

func TestPublishLegacyArticleByAuthor(t *testing.T) {
	article := &entity.Article{ID: "new-paper", Title: "New Paper", AuthorID: "x", AuthorName: "Alex", Content: "Body text."}
	client := &stubClient{
		login:   "alexgh",
		name:    "Alex",
		content: "export const ARTICLES: Article[] = [\n];",
		sha:     "abc123",
	}
	handler := newPublishHandler(article, client)

	req := httptest.NewRequest(http.MethodPost, "/legacy/articles/new-paper", nil)
	req.Header.Set(legacyhttp.TokenHeader, "ghp_token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, body = %s", rr.Code, rr.Body.String())
	}
	if !client.updated || !strings.Contains(client.newContent, `id: "new-paper"`) {
		t.Errorf("record not written, content = %q", client.newContent)
	}

	var resp legacyhttp.DeleteResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Transcript) == 0 || resp.Transcript[len(resp.Transcript)-1] != "> Success." {
		t.Errorf("transcript = %v", resp.Transcript)
	}
}

func TestPublishDuplicateRecordConflicts(t *testing.T) {
	article := &entity.Article{ID: "new-paper", Title: "New Paper", AuthorID: "x", AuthorName: "Alex", Content: "Body."}
	client := &stubClient{
		login:   "alexgh",
		name:    "Alex",
		content: "export const ARTICLES: Article[] = [\n  { id: \"new-paper\" },\n];",
		sha:     "abc123",
	}
	handler := newPublishHandler(article, client)

	req := httptest.NewRequest(http.MethodPost, "/legacy/articles/new-paper", nil)
	req.Header.Set(legacyhttp.TokenHeader, "ghp_token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusConflict)
	}
	if client.updated {
		t.Error("file must not be written for a duplicate record")
	}

	var resp legacyhttp.DeleteResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Error, "already present") {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestDeleteUnknownArticle(t *testing.T) {
	handler := newHandler(nil, &stubClient{})

	req := httptest.NewRequest(http.MethodDelete, "/legacy/articles/ghost", nil)
	req.Header.Set(legacyhttp.TokenHeader, "ghp_token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
