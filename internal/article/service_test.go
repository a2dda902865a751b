package article

import (
	"context"
	"testing"

	"github.com/SergeyParamoshkin/articles/internal/cache"
	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

// countingStore wraps a Store and counts reads, so tests can assert whether a
// lookup was served from the cache or read through.
type countingStore struct {
	store.Store
	gets int
}

func (c *countingStore) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	c.gets++

	return c.Store.GetByID(ctx, id)
}

func newFixture(articles ...*model.Article) (*Service, *countingStore, *cache.Memory) {
	cs := &countingStore{Store: store.NewMemoryWith(articles...)}
	mc := cache.NewMemory()

	return NewService(cs, mc, nil, nil), cs, mc
}

func TestGetArticleMissingIsAbsentAndNotCached(t *testing.T) {
	svc, _, mc := newFixture()

	got, err := svc.GetArticle(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected absent article, got %+v", got)
	}
	if _, ok := mc.Get(CacheKey(42)); ok {
		t.Fatal("negative result must not be cached")
	}
	if mc.Len() != 0 {
		t.Fatalf("cache should stay empty, holds %d entries", mc.Len())
	}
}

func TestGetArticleReadsThroughAndPopulatesCache(t *testing.T) {
	fixture := &model.Article{ID: 5, Title: "Go", Content: "Intro"}
	svc, cs, mc := newFixture(fixture)

	got, err := svc.GetArticle(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != 5 || got.Title != "Go" || got.Content != "Intro" {
		t.Fatalf("unexpected article: %+v", got)
	}
	if cs.gets != 1 {
		t.Fatalf("expected 1 store read, got %d", cs.gets)
	}

	cached, ok := mc.Get(CacheKey(5))
	if !ok {
		t.Fatal("cache should hold the article after a read-through")
	}
	if cached != got {
		t.Fatalf("cached value %+v differs from returned %+v", cached, got)
	}

	// Second read is served from the cache without touching the store.
	again, err := svc.GetArticle(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if again != got {
		t.Fatalf("second read returned %+v, want %+v", again, got)
	}
	if cs.gets != 1 {
		t.Fatalf("second read hit the store, %d reads total", cs.gets)
	}
}

func TestGetArticleCacheTakesPrecedence(t *testing.T) {
	stale := &model.Article{ID: 7, Title: "cached", Content: "old"}
	fresh := &model.Article{ID: 7, Title: "stored", Content: "new"}
	svc, cs, mc := newFixture(fresh)

	mc.Set(CacheKey(7), stale)

	got, err := svc.GetArticle(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if got != stale {
		t.Fatalf("expected the cached value, got %+v", got)
	}
	if cs.gets != 0 {
		t.Fatalf("cache hit must short-circuit the store, saw %d reads", cs.gets)
	}
}

func TestCreateArticleDoesNotWarmCache(t *testing.T) {
	svc, cs, mc := newFixture()

	created, err := svc.CreateArticle(context.Background(), "T", "C")
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("store must assign an id on save")
	}
	if created.Title != "T" || created.Content != "C" {
		t.Fatalf("unexpected article: %+v", created)
	}
	if mc.Len() != 0 {
		t.Fatal("create must not warm the cache")
	}

	// First read after create misses the cache and reads through.
	got, err := svc.GetArticle(context.Background(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("unexpected article: %+v", got)
	}
	if cs.gets != 1 {
		t.Fatalf("expected a read-through after create, saw %d store reads", cs.gets)
	}
}

func TestCacheKeyFormat(t *testing.T) {
	if key := CacheKey(5); key != "article:5" {
		t.Fatalf("unexpected key %q", key)
	}
	if key := CacheKey(1234567); key != "article:1234567" {
		t.Fatalf("unexpected key %q", key)
	}
}
