package markdown_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dan-papers/internal/markdown"
)

func text(s string) []markdown.Span {
	return []markdown.Span{{Kind: markdown.SpanText, Text: s}}
}

func TestRenderBasicBlocks(t *testing.T) {
	content := strings.Join([]string{
		"# Title",
		"## Section",
		"### Subsection",
		"",
		"A paragraph.",
		"* first item",
		"* second item",
		"> a quote",
	}, "\n")

	want := []markdown.Block{
		{Kind: markdown.BlockHeading, Level: 1, Spans: text("Title")},
		{Kind: markdown.BlockHeading, Level: 2, Spans: text("Section")},
		{Kind: markdown.BlockHeading, Level: 3, Spans: text("Subsection")},
		{Kind: markdown.BlockSpacer},
		{Kind: markdown.BlockParagraph, Spans: text("A paragraph.")},
		{Kind: markdown.BlockListItem, Spans: text("first item")},
		{Kind: markdown.BlockListItem, Spans: text("second item")},
		{Kind: markdown.BlockQuote, Spans: text("a quote")},
	}

	got := markdown.Render(content)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEmptyContent(t *testing.T) {
	if got := markdown.Render(""); len(got) != 0 {
		t.Fatalf("Render(\"\") = %v, want empty", got)
	}
}

func TestRenderTable(t *testing.T) {
	content := strings.Join([]string{
		"| Name | Score | Notes |",
		"| :--: | --: | --- |",
		"| alpha | 10 | **good** |",
		"| beta | 3 | fair |",
	}, "\n")

	got := markdown.Render(content)
	if len(got) != 1 {
		t.Fatalf("Render produced %d blocks, want 1 table block", len(got))
	}
	tbl := got[0].Table
	if got[0].Kind != markdown.BlockTable || tbl == nil {
		t.Fatalf("block = %+v, want table", got[0])
	}

	wantAligns := []markdown.Alignment{markdown.AlignCenter, markdown.AlignRight, markdown.AlignLeft}
	if diff := cmp.Diff(wantAligns, tbl.Alignments); diff != "" {
		t.Errorf("alignments mismatch (-want +got):\n%s", diff)
	}
	if len(tbl.Header) != 3 {
		t.Fatalf("header has %d cells, want 3", len(tbl.Header))
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("table has %d rows, want 2", len(tbl.Rows))
	}

	wantCell := []markdown.Span{{Kind: markdown.SpanBold, Text: "good"}}
	if diff := cmp.Diff(wantCell, tbl.Rows[0][2].Spans); diff != "" {
		t.Errorf("cell inline parse mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLonePipeLineIsParagraph(t *testing.T) {
	got := markdown.Render("| not a table |")
	want := []markdown.Block{
		{Kind: markdown.BlockParagraph, Spans: text("| not a table |")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFencedCode(t *testing.T) {
	content := strings.Join([]string{
		"```",
		"func main() {",
		"\tfmt.Println(\"**not bold**\")",
		"}",
		"```",
		"after",
	}, "\n")

	got := markdown.Render(content)
	want := []markdown.Block{
		{Kind: markdown.BlockCode, Code: "func main() {\n\tfmt.Println(\"**not bold**\")\n}"},
		{Kind: markdown.BlockParagraph, Spans: text("after")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderUnclosedFenceConsumesRest(t *testing.T) {
	got := markdown.Render("```\nline one\nline two")
	want := []markdown.Block{
		{Kind: markdown.BlockCode, Code: "line one\nline two"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

// Outside table and code runs, every input line yields exactly one block.
func TestRenderOneBlockPerLine(t *testing.T) {
	lines := []string{"# h", "p one", "", "* item", "> q", "p two", ""}
	got := markdown.Render(strings.Join(lines, "\n"))
	if len(got) != len(lines) {
		t.Fatalf("Render produced %d blocks for %d lines", len(got), len(lines))
	}
}
