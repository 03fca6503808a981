package content

import (
	"context"
	"errors"
	"testing"

	"dan-papers/internal/infra/extract"
	"dan-papers/internal/infra/structurer"
)

type stubProvider struct {
	structured *structurer.StructuredArticle
	summary    string
	err        error
}

func (p *stubProvider) StructureArticle(context.Context, string) (*structurer.StructuredArticle, error) {
	return p.structured, p.err
}

func (p *stubProvider) Summarize(context.Context, string) (string, error) {
	return p.summary, p.err
}

func TestStructureSuccess(t *testing.T) {
	want := &structurer.StructuredArticle{Title: "T", Content: "C"}
	svc := NewService(&stubProvider{structured: want})

	if got := svc.Structure(context.Background(), "raw"); got != want {
		t.Fatalf("Structure = %+v", got)
	}
}

func TestStructureFallsBackToRawText(t *testing.T) {
	svc := NewService(&stubProvider{err: errors.New("provider down")})

	got := svc.Structure(context.Background(), "# Heading\n\nbody text")
	if got.Content != "# Heading\n\nbody text" {
		t.Fatalf("fallback content = %q", got.Content)
	}
	if got.Title != "Heading" {
		t.Fatalf("fallback title = %q", got.Title)
	}
}

func TestSummarizeFallbackMessage(t *testing.T) {
	svc := NewService(&stubProvider{err: errors.New("provider down")})
	if got := svc.Summarize(context.Background(), "text"); got != summaryFallback {
		t.Fatalf("Summarize = %q", got)
	}

	svc = NewService(&stubProvider{summary: "A fine summary."})
	if got := svc.Summarize(context.Background(), "text"); got != "A fine summary." {
		t.Fatalf("Summarize = %q", got)
	}
}

func TestImportRejectsUnsupportedFormat(t *testing.T) {
	svc := NewService(&stubProvider{})
	_, err := svc.Import(context.Background(), "paper.pdf", []byte("%PDF"))
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Fatalf("err=%v", err)
	}
}

func TestImportStructuresExtractedText(t *testing.T) {
	want := &structurer.StructuredArticle{Title: "T", Content: "C"}
	svc := NewService(&stubProvider{structured: want})

	got, err := svc.Import(context.Background(), "paper.md", []byte("# T\n\nbody"))
	if err != nil {
		t.Fatalf("Import err=%v", err)
	}
	if got != want {
		t.Fatalf("Import = %+v", got)
	}
}
