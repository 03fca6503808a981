package markdown_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dan-papers/internal/markdown"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []markdown.Span
	}{
		{
			name: "plain text",
			line: "just some text",
			want: []markdown.Span{{Kind: markdown.SpanText, Text: "just some text"}},
		},
		{
			name: "bold and italic",
			line: "**a** and *b*",
			want: []markdown.Span{
				{Kind: markdown.SpanBold, Text: "a"},
				{Kind: markdown.SpanText, Text: " and "},
				{Kind: markdown.SpanItalic, Text: "b"},
			},
		},
		{
			name: "link",
			line: "[x](http://y)",
			want: []markdown.Span{{Kind: markdown.SpanLink, Text: "x", URL: "http://y"}},
		},
		{
			name: "link surrounded by text",
			line: "see [docs](https://example.com) here",
			want: []markdown.Span{
				{Kind: markdown.SpanText, Text: "see "},
				{Kind: markdown.SpanLink, Text: "docs", URL: "https://example.com"},
				{Kind: markdown.SpanText, Text: " here"},
			},
		},
		{
			name: "bold is not rescanned for links",
			line: "**[x](http://y)**",
			want: []markdown.Span{{Kind: markdown.SpanBold, Text: "[x](http://y)"}},
		},
		{
			name: "unterminated bold degrades to italic then text",
			line: "**half open",
			want: []markdown.Span{
				{Kind: markdown.SpanItalic, Text: ""},
				{Kind: markdown.SpanText, Text: "half open"},
			},
		},
		{
			name: "lone asterisk passes through",
			line: "2 * 3",
			want: []markdown.Span{{Kind: markdown.SpanText, Text: "2 * 3"}},
		},
		{
			name: "empty line yields no spans",
			line: "",
			want: nil,
		},
		{
			name: "adjacent bold runs have no empty gap span",
			line: "**a****b**",
			want: []markdown.Span{
				{Kind: markdown.SpanBold, Text: "a"},
				{Kind: markdown.SpanBold, Text: "b"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := markdown.ParseInline(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseInline(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

// Concatenating the text of every span must reproduce the input line with only
// the style markers removed, never reordered.
func TestParseInlinePreservesOrder(t *testing.T) {
	line := "intro **bold** middle *it* [l](http://u) tail"
	spans := markdown.ParseInline(line)

	var rebuilt string
	for _, s := range spans {
		switch s.Kind {
		case markdown.SpanBold:
			rebuilt += "**" + s.Text + "**"
		case markdown.SpanItalic:
			rebuilt += "*" + s.Text + "*"
		case markdown.SpanLink:
			rebuilt += "[" + s.Text + "](" + s.URL + ")"
		default:
			rebuilt += s.Text
		}
	}
	if rebuilt != line {
		t.Fatalf("span round trip = %q, want %q", rebuilt, line)
	}
}
