package cache

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGetMissing(t *testing.T) {
	c := NewMemory()

	if a, ok := c.Get("article:1"); ok || a != nil {
		t.Fatalf("expected absent entry, got %+v", a)
	}
}

func TestSetThenGet(t *testing.T) {
	c := NewMemory()
	a := &model.Article{ID: 1, Title: "Go", Content: "Intro"}

	c.Set("article:1", a)

	got, ok := c.Get("article:1")
	if !ok {
		t.Fatal("expected entry after Set")
	}
	if got != a {
		t.Fatalf("got %+v, want %+v", got, a)
	}
	if c.Len() != 1 {
		t.Fatalf("unexpected length %d", c.Len())
	}
}

func TestSetReplaces(t *testing.T) {
	c := NewMemory()
	c.Set("article:1", &model.Article{ID: 1, Title: "old"})
	c.Set("article:1", &model.Article{ID: 1, Title: "new"})

	got, ok := c.Get("article:1")
	if !ok || got.Title != "new" {
		t.Fatalf("expected replacement, got %+v", got)
	}
	if c.Len() != 1 {
		t.Fatalf("unexpected length %d", c.Len())
	}
}
