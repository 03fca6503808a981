// Package legacy orchestrates the deprecated config-file patch paths:
// articles that predate the structured repository live as records in a
// source file of a remote repository and are removed or inserted by splicing
// that file through the GitHub contents API. Kept only until the bundled
// articles are migrated; do not model new features on it.
package legacy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dan-papers/internal/domain/entity"
	"dan-papers/internal/infra/legacy"
)

var (
	// ErrPermissionDenied is returned when the token owner may not delete
	// the targeted article.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrRecordNotFound is returned when the article's record, or the
	// insertion marker, is absent from the fetched file.
	ErrRecordNotFound = errors.New("record not found in legacy file")

	// ErrRecordExists is returned when a publish targets an id the file
	// already contains.
	ErrRecordExists = errors.New("record already present in legacy file")
)

// GitHubClient is the slice of the contents API the patcher needs.
type GitHubClient interface {
	GetUser(ctx context.Context, token string) (*legacy.User, error)
	FetchFileContent(ctx context.Context, cfg legacy.Config) (*legacy.File, error)
	UpdateFileContent(ctx context.Context, cfg legacy.Config, newContent, sha, commitMessage string) error
}

// Service runs the legacy delete flow against a fixed repository file.
type Service struct {
	Client GitHubClient
	Config legacy.Config

	// AdminLogin is the single account allowed to delete any legacy
	// article, including the site owner's.
	AdminLogin string

	// SiteOwnerAuthors are author names whose articles only AdminLogin
	// may delete.
	SiteOwnerAuthors []string

	// InsertMarker is the literal after which published records are
	// spliced into the file.
	InsertMarker string
}

// NewService creates a legacy service with the historical defaults.
func NewService(client GitHubClient, cfg legacy.Config) *Service {
	return &Service{
		Client:           client,
		Config:           cfg,
		AdminLogin:       "somdipto",
		SiteOwnerAuthors: []string{"dan", "somdipto"},
		InsertMarker:     "export const ARTICLES: Article[] = [",
	}
}

// Result is the outcome of a delete run: the operator-facing transcript
// accumulated across steps. On failure the transcript ends with the raw
// error line, matching the terminal UX this path has always had.
type Result struct {
	Transcript []string
}

func (r *Result) log(format string, args ...any) {
	r.Transcript = append(r.Transcript, fmt.Sprintf(format, args...))
}

// Delete removes the article's record from the configured file. The
// authorization rule runs before any file access; any subsequent failure
// aborts the whole operation, and the single sha-guarded write means no
// partial state is possible.
func (s *Service) Delete(ctx context.Context, token string, target *entity.Article) (*Result, error) {
	result := &Result{}
	result.log("$ Authenticating identity with token...")

	user, err := s.Client.GetUser(ctx, token)
	if err != nil {
		return s.fail(result, err)
	}

	username := strings.ToLower(user.Login)
	isAdmin := username == strings.ToLower(s.AdminLogin)
	result.log("> Authenticated as: %s (%s)", user.Login, roleLabel(isAdmin))

	authorName := strings.ToLower(target.AuthorName)
	isOwner := authorName == strings.ToLower(user.Name) || authorName == username

	if s.isSiteOwnerArticle(authorName) && !isAdmin {
		return s.fail(result, fmt.Errorf("%w: you cannot delete the owner's papers", ErrPermissionDenied))
	}
	if !isAdmin && !isOwner {
		return s.fail(result, fmt.Errorf("%w: you are not the author of this paper", ErrPermissionDenied))
	}

	cfg := s.Config
	cfg.Token = token

	result.log("$ git fetch origin %s", branchLabel(cfg))
	file, err := s.Client.FetchFileContent(ctx, cfg)
	if err != nil {
		return s.fail(result, err)
	}
	result.log("> Reading %s... OK", cfg.Path)

	newContent, err := legacy.SpliceDelete(file.Content, target.ID)
	if err != nil {
		return s.fail(result, fmt.Errorf("%w: %v", ErrRecordNotFound, err))
	}

	commitMsg := fmt.Sprintf("Delete: %s", target.Title)
	if err := s.Client.UpdateFileContent(ctx, cfg, newContent, file.Sha, commitMsg); err != nil {
		return s.fail(result, err)
	}

	result.log("> Success.")
	return result, nil
}

// Publish inserts the article's record into the configured file, directly
// after the list marker. Same guarantees as Delete: authorization before any
// file access, one sha-guarded write, raw error lines in the transcript.
func (s *Service) Publish(ctx context.Context, token string, article *entity.Article) (*Result, error) {
	result := &Result{}
	result.log("$ Authenticating identity with token...")

	user, err := s.Client.GetUser(ctx, token)
	if err != nil {
		return s.fail(result, err)
	}

	username := strings.ToLower(user.Login)
	isAdmin := username == strings.ToLower(s.AdminLogin)
	result.log("> Authenticated as: %s (%s)", user.Login, roleLabel(isAdmin))

	authorName := strings.ToLower(article.AuthorName)
	isOwner := authorName == strings.ToLower(user.Name) || authorName == username

	if s.isSiteOwnerArticle(authorName) && !isAdmin {
		return s.fail(result, fmt.Errorf("%w: only the admin may publish under the owner's name", ErrPermissionDenied))
	}
	if !isAdmin && !isOwner {
		return s.fail(result, fmt.Errorf("%w: you are not the author of this paper", ErrPermissionDenied))
	}

	if err := recordSplicable(article); err != nil {
		return s.fail(result, err)
	}

	cfg := s.Config
	cfg.Token = token

	result.log("$ git fetch origin %s", branchLabel(cfg))
	file, err := s.Client.FetchFileContent(ctx, cfg)
	if err != nil {
		return s.fail(result, err)
	}
	result.log("> Reading %s... OK", cfg.Path)

	if strings.Contains(file.Content, fmt.Sprintf("id: %q", article.ID)) {
		return s.fail(result, fmt.Errorf("%w: id %q", ErrRecordExists, article.ID))
	}

	newContent, err := legacy.SpliceInsert(file.Content, s.InsertMarker, formatRecord(article))
	if err != nil {
		return s.fail(result, fmt.Errorf("%w: %v", ErrRecordNotFound, err))
	}

	commitMsg := fmt.Sprintf("Publish: %s", article.Title)
	if err := s.Client.UpdateFileContent(ctx, cfg, newContent, file.Sha, commitMsg); err != nil {
		return s.fail(result, err)
	}

	result.log("> Success.")
	return result, nil
}

// formatRecord renders the article as a source-file record. String fields go
// through %q, so newlines and quotes stay inside the literal.
func formatRecord(a *entity.Article) string {
	var b strings.Builder
	b.WriteString("\n  {\n")
	fmt.Fprintf(&b, "    id: %q,\n", a.ID)
	fmt.Fprintf(&b, "    title: %q,\n", a.Title)
	if a.Subtitle != "" {
		fmt.Fprintf(&b, "    subtitle: %q,\n", a.Subtitle)
	}
	fmt.Fprintf(&b, "    author: %q,\n", a.AuthorName)
	fmt.Fprintf(&b, "    date: %q,\n", a.Date)
	fmt.Fprintf(&b, "    readTime: %d,\n", a.ReadTime)
	if len(a.Tags) > 0 {
		quoted := make([]string, len(a.Tags))
		for i, tag := range a.Tags {
			quoted[i] = fmt.Sprintf("%q", tag)
		}
		fmt.Fprintf(&b, "    tags: [%s],\n", strings.Join(quoted, ", "))
	}
	if a.Image != "" {
		fmt.Fprintf(&b, "    image: %q,\n", a.Image)
	}
	fmt.Fprintf(&b, "    content: %q,\n", a.Content)
	b.WriteString("  },")
	return b.String()
}

// recordSplicable rejects field values containing brace characters: the
// delete scan finds record boundaries textually and a brace inside a string
// literal would corrupt it.
func recordSplicable(a *entity.Article) error {
	fields := map[string]string{
		"title":    a.Title,
		"subtitle": a.Subtitle,
		"content":  a.Content,
	}
	for field, value := range fields {
		if strings.ContainsAny(value, "{}") {
			return &entity.ValidationError{
				Field:   field,
				Message: field + " may not contain brace characters in the legacy file",
			}
		}
	}
	return nil
}

func (s *Service) fail(result *Result, err error) (*Result, error) {
	result.log("FATAL: %s", err.Error())
	return result, err
}

func (s *Service) isSiteOwnerArticle(authorName string) bool {
	for _, owner := range s.SiteOwnerAuthors {
		if authorName == strings.ToLower(owner) {
			return true
		}
	}
	return false
}

func roleLabel(isAdmin bool) string {
	if isAdmin {
		return "ADMIN"
	}
	return "USER"
}

func branchLabel(cfg legacy.Config) string {
	if cfg.Branch == "" {
		return "main"
	}
	return cfg.Branch
}
