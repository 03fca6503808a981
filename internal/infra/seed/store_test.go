package seed

import "testing"

func TestLoadEmbeddedBundle(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	all := store.All()
	if len(all) == 0 {
		t.Fatal("embedded bundle has no articles")
	}
	for _, article := range all {
		if !article.IsSeed() {
			t.Errorf("seed article %q has an author id", article.ID)
		}
		if !article.Published {
			t.Errorf("seed article %q is not published", article.ID)
		}
		if article.ReadTime < 1 {
			t.Errorf("seed article %q read time = %d", article.ID, article.ReadTime)
		}
	}
}

func TestGetReturnsCopies(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	id := store.All()[0].ID

	first := store.Get(id)
	first.Title = "mutated"
	if len(first.Tags) > 0 {
		first.Tags[0] = "mutated"
	}

	second := store.Get(id)
	if second.Title == "mutated" {
		t.Fatal("store handed out a shared article")
	}
	if len(second.Tags) > 0 && second.Tags[0] == "mutated" {
		t.Fatal("store handed out shared tag storage")
	}
}

func TestGetMissing(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if got := store.Get("no-such-article"); got != nil {
		t.Fatalf("Get on unknown id = %v, want nil", got)
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	raw := []byte("- id: a\n  title: one\n- id: a\n  title: two\n")
	if _, err := load(raw); err == nil {
		t.Fatal("duplicate ids should fail to load")
	}
}
