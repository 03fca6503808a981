package legacy

import (
	"strings"
	"testing"
)

func TestSpliceDeleteMiddleEntry(t *testing.T) {
	content := `foo: 1, { id: "a" }, bar: 2`
	got, err := SpliceDelete(content, "a")
	if err != nil {
		t.Fatalf("SpliceDelete err=%v", err)
	}
	if got != "foo: 1,  bar: 2" {
		t.Fatalf("SpliceDelete = %q", got)
	}
}

func TestSpliceDeleteNestedBraces(t *testing.T) {
	content := `export const ARTICLES = [
  {
    id: "first",
    meta: { tags: ["x"] },
  },
  {
    id: "second",
  },
];`
	got, err := SpliceDelete(content, "first")
	if err != nil {
		t.Fatalf("SpliceDelete err=%v", err)
	}
	if strings.Contains(got, `id: "first"`) {
		t.Fatal("first record still present")
	}
	if !strings.Contains(got, `id: "second"`) {
		t.Fatal("second record was damaged")
	}
	if strings.Count(got, "{") != strings.Count(got, "}") {
		t.Fatal("result has unbalanced braces")
	}
}

func TestSpliceDeleteLastEntryKeepsPredecessorComma(t *testing.T) {
	content := `[{ id: "a" }, { id: "b" }]`
	got, err := SpliceDelete(content, "b")
	if err != nil {
		t.Fatalf("SpliceDelete err=%v", err)
	}
	if got != `[{ id: "a" }, ]` {
		t.Fatalf("SpliceDelete = %q", got)
	}
}

func TestSpliceDeleteMissingID(t *testing.T) {
	if _, err := SpliceDelete(`{ id: "a" }`, "zzz"); err == nil {
		t.Fatal("missing id should fail")
	}
}

func TestSpliceDeleteUnbalanced(t *testing.T) {
	if _, err := SpliceDelete(`{ id: "a" `, "a"); err == nil {
		t.Fatal("unbalanced braces should fail")
	}
}

func TestSpliceInsert(t *testing.T) {
	content := "const ARTICLES = [\n];"
	got, err := SpliceInsert(content, "ARTICLES = [", "\n  { id: \"new\" },")
	if err != nil {
		t.Fatalf("SpliceInsert err=%v", err)
	}
	if !strings.Contains(got, `{ id: "new" },`) {
		t.Fatalf("SpliceInsert = %q", got)
	}
	if _, err := SpliceInsert(content, "NO SUCH MARKER", "x"); err == nil {
		t.Fatal("missing marker should fail")
	}
}
