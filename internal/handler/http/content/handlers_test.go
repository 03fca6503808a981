package content_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dan-papers/internal/handler/http/content"
	"dan-papers/internal/infra/structurer"
	contentUC "dan-papers/internal/usecase/content"
)

type stubProvider struct {
	structured *structurer.StructuredArticle
	summary    string
	err        error
}

func (s *stubProvider) StructureArticle(_ context.Context, _ string) (*structurer.StructuredArticle, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.structured, nil
}

func (s *stubProvider) Summarize(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

func newHandlerService(p *stubProvider) *contentUC.Service {
	return contentUC.NewService(p)
}

func TestStructureHandler(t *testing.T) {
	svc := newHandlerService(&stubProvider{structured: &structurer.StructuredArticle{
		Title:   "Structured",
		Tags:    []string{"go"},
		Content: "# Structured\n\nBody.",
	}})
	handler := content.StructureHandler{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/content/structure",
		strings.NewReader(`{"text":"raw notes"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var got structurer.StructuredArticle
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Title != "Structured" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestStructureHandlerFallsBackOnProviderError(t *testing.T) {
	svc := newHandlerService(&stubProvider{err: errors.New("provider down")})
	handler := content.StructureHandler{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/content/structure",
		strings.NewReader(`{"text":"# Heading\n\nraw notes"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// Provider failure is not an HTTP failure.
	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var got structurer.StructuredArticle
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Title != "Heading" {
		t.Errorf("fallback title = %q, want derived first line", got.Title)
	}
}

func TestStructureHandlerRequiresText(t *testing.T) {
	handler := content.StructureHandler{Svc: newHandlerService(&stubProvider{})}

	req := httptest.NewRequest(http.MethodPost, "/content/structure", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestSummarizeHandler(t *testing.T) {
	svc := newHandlerService(&stubProvider{summary: "A short academic summary."})
	handler := content.SummarizeHandler{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/content/summarize",
		strings.NewReader(`{"text":"long article text"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var got struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Summary != "A short academic summary." {
		t.Errorf("summary = %q", got.Summary)
	}
}

func TestSummarizeHandlerFallbackMessage(t *testing.T) {
	svc := newHandlerService(&stubProvider{err: errors.New("provider down")})
	handler := content.SummarizeHandler{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/content/summarize",
		strings.NewReader(`{"text":"long article text"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Failed to generate summary") {
		t.Errorf("body = %s, want fixed fallback message", rr.Body.String())
	}
}

func multipartFile(t *testing.T, filename, body string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(body)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestImportHandlerMarkdown(t *testing.T) {
	svc := newHandlerService(&stubProvider{structured: &structurer.StructuredArticle{
		Title:   "Imported",
		Content: "# Imported",
	}})
	handler := content.ImportHandler{Svc: svc, Logger: slog.New(slog.DiscardHandler)}

	body, contentType := multipartFile(t, "notes.md", "# Imported\n\nBody.")
	req := httptest.NewRequest(http.MethodPost, "/content/import", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, body = %s", rr.Code, rr.Body.String())
	}

	var got structurer.StructuredArticle
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Title != "Imported" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestImportHandlerRejectsPDF(t *testing.T) {
	handler := content.ImportHandler{
		Svc:    newHandlerService(&stubProvider{}),
		Logger: slog.New(slog.DiscardHandler),
	}

	body, contentType := multipartFile(t, "paper.pdf", "%PDF-1.7 ...")
	req := httptest.NewRequest(http.MethodPost, "/content/import", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnsupportedMediaType)
	}
}

func TestImportHandlerMissingFilePart(t *testing.T) {
	handler := content.ImportHandler{
		Svc:    newHandlerService(&stubProvider{}),
		Logger: slog.New(slog.DiscardHandler),
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("note", "no file here")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/content/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
