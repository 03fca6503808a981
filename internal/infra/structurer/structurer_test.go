package structurer

import (
	"context"
	"strings"
	"testing"
)

func TestParseStructured(t *testing.T) {
	raw := `{"title":"T","subtitle":"S","tags":["a","b"],"content":"# T\n\nbody"}`
	got, err := parseStructured(raw)
	if err != nil {
		t.Fatalf("parseStructured err=%v", err)
	}
	if got.Title != "T" || got.Subtitle != "S" || len(got.Tags) != 2 || got.Content == "" {
		t.Fatalf("parseStructured = %+v", got)
	}
}

func TestParseStructuredStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"content\":\"body\"}\n```"
	got, err := parseStructured(raw)
	if err != nil {
		t.Fatalf("parseStructured err=%v", err)
	}
	if got.Title != "T" || got.Content != "body" {
		t.Fatalf("parseStructured = %+v", got)
	}
}

func TestParseStructuredRejectsIncomplete(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		`{"subtitle":"no title or content"}`,
		`{"title":"T"}`,
	} {
		if _, err := parseStructured(raw); err == nil {
			t.Errorf("parseStructured(%q) should fail", raw)
		}
	}
}

func TestTruncateInput(t *testing.T) {
	long := strings.Repeat("a", maxInputChars+100)
	got := truncateInput(long)
	if len(got) >= len(long) {
		t.Fatal("long input was not truncated")
	}
	if !strings.Contains(got, "truncated") {
		t.Fatal("truncation marker missing")
	}
	if truncateInput("short") != "short" {
		t.Fatal("short input must pass through unchanged")
	}
}

func TestNoOpStructureArticle(t *testing.T) {
	noop := NewNoOp()
	got, err := noop.StructureArticle(context.Background(), "# My Paper\n\nBody text.")
	if err != nil {
		t.Fatalf("StructureArticle err=%v", err)
	}
	if got.Title != "My Paper" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Content != "# My Paper\n\nBody text." {
		t.Fatalf("content changed: %q", got.Content)
	}
}

func TestFirstLineTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"heading marker stripped", "## A Heading\nrest", "A Heading"},
		{"leading blank lines skipped", "\n\n  first real line\n", "first real line"},
		{"empty input", "   \n \n", "Untitled Document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstLineTitle(tt.raw); got != tt.want {
				t.Fatalf("FirstLineTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstLineTitleClipsLongLines(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := FirstLineTitle(long)
	if len([]rune(got)) > 84 {
		t.Fatalf("title not clipped: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatal("clipped title should end with ellipsis")
	}
}
