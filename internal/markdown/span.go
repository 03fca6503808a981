// Package markdown implements the Markdown subset used for article content.
// It is deliberately not a general-purpose Markdown engine: the dialect is the
// ad-hoc one the composer produces, with fixed marker precedence (bold, then
// italic, then links), no escaping, and literal passthrough of malformed
// markers.
package markdown

import "regexp"

// SpanKind identifies the inline style of a Span.
type SpanKind string

// Inline span kinds.
const (
	SpanText   SpanKind = "text"
	SpanBold   SpanKind = "bold"
	SpanItalic SpanKind = "italic"
	SpanLink   SpanKind = "link"
)

// Span is one inline-styled fragment of text within a block. For link spans,
// Text holds the label and URL the destination; for all other kinds URL is
// empty.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
	URL  string   `json:"url,omitempty"`
}

var (
	boldPattern   = regexp.MustCompile(`\*\*.*?\*\*`)
	italicPattern = regexp.MustCompile(`\*.*?\*`)
	linkPattern   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// ParseInline converts one line of raw text into an ordered sequence of spans.
// Every input character is preserved in order; unmatched or unterminated
// markers pass through as literal text. Empty input yields no spans.
func ParseInline(line string) []Span {
	if line == "" {
		return nil
	}
	var spans []Span
	for _, frag := range splitMatches(line, boldPattern) {
		if frag.matched {
			spans = append(spans, Span{Kind: SpanBold, Text: frag.text[2 : len(frag.text)-2]})
			continue
		}
		spans = append(spans, parseItalic(frag.text)...)
	}
	return spans
}

// fragment is a slice of the input line, flagged when it matched a marker
// pattern. Bold fragments are never re-scanned for italics or links.
type fragment struct {
	text    string
	matched bool
}

// splitMatches splits s around every match of re, keeping the matches.
// Empty gaps between adjacent matches are dropped so no empty text spans
// reach the output.
func splitMatches(s string, re *regexp.Regexp) []fragment {
	var out []fragment
	last := 0
	for _, m := range re.FindAllStringIndex(s, -1) {
		if m[0] > last {
			out = append(out, fragment{text: s[last:m[0]]})
		}
		out = append(out, fragment{text: s[m[0]:m[1]], matched: true})
		last = m[1]
	}
	if last < len(s) {
		out = append(out, fragment{text: s[last:]})
	}
	return out
}

func parseItalic(s string) []Span {
	var spans []Span
	for _, frag := range splitMatches(s, italicPattern) {
		if frag.matched {
			spans = append(spans, Span{Kind: SpanItalic, Text: frag.text[1 : len(frag.text)-1]})
			continue
		}
		spans = append(spans, parseLinks(frag.text)...)
	}
	return spans
}

func parseLinks(s string) []Span {
	var spans []Span
	last := 0
	for _, m := range linkPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			spans = append(spans, Span{Kind: SpanText, Text: s[last:m[0]]})
		}
		spans = append(spans, Span{Kind: SpanLink, Text: s[m[2]:m[3]], URL: s[m[4]:m[5]]})
		last = m[1]
	}
	if last < len(s) {
		spans = append(spans, Span{Kind: SpanText, Text: s[last:]})
	}
	return spans
}
