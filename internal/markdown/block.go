package markdown

import "strings"

// BlockKind identifies the block-level type of a Block.
type BlockKind string

// Block kinds.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockListItem  BlockKind = "list_item"
	BlockQuote     BlockKind = "blockquote"
	BlockCode      BlockKind = "code"
	BlockTable     BlockKind = "table"
	BlockSpacer    BlockKind = "spacer"
)

// Alignment is the horizontal alignment of a table column, taken from the
// table's alignment row (`:---:` center, `---:` right, anything else left).
type Alignment string

// Column alignments.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Cell is one table cell; its text has been run through the inline parser.
type Cell struct {
	Spans []Span `json:"spans"`
}

// Table holds a parsed table run: header cells, one alignment per column,
// and zero or more body rows. Alignments apply to header and body cells by
// column index.
type Table struct {
	Header     []Cell      `json:"header"`
	Alignments []Alignment `json:"alignments"`
	Rows       [][]Cell    `json:"rows"`
}

// Block is one renderable unit of article content. Exactly one of Spans,
// Code, or Table is populated depending on Kind; spacer blocks carry nothing.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"` // headings: 1-3
	Spans []Span    `json:"spans,omitempty"`
	Code  string    `json:"code,omitempty"`
	Table *Table    `json:"table,omitempty"`
}

// Render splits the full content into lines and groups them into block
// elements in source order. It is a pure function of its input and fully
// materializes the result. Every input line is accounted for: table and
// fenced-code runs consume multiple lines, everything else maps one line to
// one block (blank lines become explicit spacer blocks). Empty content yields
// an empty sequence.
func Render(content string) []Block {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "|"):
			run := collectTableRun(lines, i)
			// A lone pipe line is not a table: header plus alignment row
			// are required. Fall through to default handling of the line.
			if len(run) < 2 {
				blocks = append(blocks, Block{Kind: BlockParagraph, Spans: ParseInline(line)})
				continue
			}
			blocks = append(blocks, Block{Kind: BlockTable, Table: parseTable(run)})
			i += len(run) - 1

		case strings.HasPrefix(trimmed, "```"):
			code, consumed := collectCodeRun(lines, i)
			blocks = append(blocks, Block{Kind: BlockCode, Code: code})
			i += consumed - 1

		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 1, Spans: ParseInline(strings.TrimPrefix(line, "# "))})

		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 2, Spans: ParseInline(strings.TrimPrefix(line, "## "))})

		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 3, Spans: ParseInline(strings.TrimPrefix(line, "### "))})

		case strings.HasPrefix(line, "* "):
			// Consecutive list items stay separate blocks; grouping into a
			// single list container is a presentation concern.
			blocks = append(blocks, Block{Kind: BlockListItem, Spans: ParseInline(strings.TrimPrefix(line, "* "))})

		case strings.HasPrefix(line, "> "):
			blocks = append(blocks, Block{Kind: BlockQuote, Spans: ParseInline(strings.TrimPrefix(line, "> "))})

		case trimmed == "":
			blocks = append(blocks, Block{Kind: BlockSpacer})

		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Spans: ParseInline(line)})
		}
	}
	return blocks
}

// collectTableRun gathers the contiguous run of pipe-prefixed lines starting
// at index start.
func collectTableRun(lines []string, start int) []string {
	end := start
	for end < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[end]), "|") {
		end++
	}
	return lines[start:end]
}

// parseTable interprets a table run: row 1 is the header, row 2 the alignment
// markup, rows 3+ the body.
func parseTable(run []string) *Table {
	header := parseCells(run[0])

	rawAligns := splitRow(run[1])
	alignments := make([]Alignment, len(rawAligns))
	for i, cell := range rawAligns {
		alignments[i] = parseAlignment(cell)
	}

	rows := make([][]Cell, 0, len(run)-2)
	for _, line := range run[2:] {
		rows = append(rows, parseCells(line))
	}

	return &Table{Header: header, Alignments: alignments, Rows: rows}
}

// splitRow splits a table row on "|" and drops the first and last empty
// fields produced by leading and trailing pipes.
func splitRow(line string) []string {
	fields := strings.Split(strings.TrimSpace(line), "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if n := len(fields); n > 0 && strings.TrimSpace(fields[n-1]) == "" {
		fields = fields[:n-1]
	}
	return fields
}

func parseCells(line string) []Cell {
	raw := splitRow(line)
	cells := make([]Cell, len(raw))
	for i, field := range raw {
		cells[i] = Cell{Spans: ParseInline(strings.TrimSpace(field))}
	}
	return cells
}

func parseAlignment(cell string) Alignment {
	c := strings.TrimSpace(cell)
	switch {
	case len(c) >= 2 && strings.HasPrefix(c, ":") && strings.HasSuffix(c, ":"):
		return AlignCenter
	case strings.HasSuffix(c, ":"):
		return AlignRight
	default:
		return AlignLeft
	}
}

// collectCodeRun captures the lines between an opening fence at index start
// and the next closing fence, which is consumed. An unclosed fence consumes
// the rest of the input. It returns the newline-joined code and the total
// number of lines consumed including both fences.
func collectCodeRun(lines []string, start int) (string, int) {
	var captured []string
	i := start + 1
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			i++
			return strings.Join(captured, "\n"), i - start
		}
		captured = append(captured, lines[i])
		i++
	}
	return strings.Join(captured, "\n"), i - start
}
