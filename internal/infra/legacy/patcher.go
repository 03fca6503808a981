package legacy

import (
	"fmt"
	"strings"
)

// SpliceDelete removes the brace-balanced record containing the literal
// `id: "<articleID>"` from the file content.
//
// The record boundaries are found textually, not by parsing the language:
// scan backward from the id to the nearest "{", then walk forward counting
// brace depth until it returns to zero. The cut then extends over trailing
// spaces and newlines up to and including a single trailing comma, so a
// middle entry leaves the list well-formed while a final entry does not pick
// up the comma of its predecessor. Brace characters inside string literals
// will confuse the scan; the bundled records never contain them.
func SpliceDelete(content, articleID string) (string, error) {
	needle := fmt.Sprintf("id: %q", articleID)
	idIndex := strings.Index(content, needle)
	if idIndex == -1 {
		return "", fmt.Errorf("article id %q not found", articleID)
	}

	startIndex := -1
	for i := idIndex; i >= 0; i-- {
		if content[i] == '{' {
			startIndex = i
			break
		}
	}
	if startIndex == -1 {
		return "", fmt.Errorf("no opening brace before id %q", articleID)
	}

	endIndex := -1
	balance := 0
	for i := startIndex; i < len(content); i++ {
		switch content[i] {
		case '{':
			balance++
		case '}':
			balance--
		}
		if balance == 0 {
			endIndex = i
			break
		}
	}
	if endIndex == -1 {
		return "", fmt.Errorf("unbalanced braces after id %q", articleID)
	}

	removeEnd := endIndex + 1
	for removeEnd < len(content) {
		ch := content[removeEnd]
		if ch == ',' {
			removeEnd++
			break
		}
		if ch != ' ' && ch != '\n' {
			break
		}
		removeEnd++
	}

	return content[:startIndex] + content[removeEnd:], nil
}

// SpliceInsert places record immediately after the first occurrence of
// marker. The publisher uses this to append a new entry to the bundled
// article list without regenerating the whole file.
func SpliceInsert(content, marker, record string) (string, error) {
	idx := strings.Index(content, marker)
	if idx == -1 {
		return "", fmt.Errorf("marker %q not found", marker)
	}
	insertAt := idx + len(marker)
	return content[:insertAt] + record + content[insertAt:], nil
}
