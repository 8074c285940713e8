package bot

import (
	"context"
	"errors"
	"testing"
)

func TestCacheKeyIncludesDepthAndHeuristic(t *testing.T) {
	k1 := CacheKey("000", 5, "")
	k2 := CacheKey("000", 5, "none")
	k3 := CacheKey("000", 4, "none")
	k4 := CacheKey("000", 5, "window")

	if k1 != k2 {
		t.Fatalf("empty heuristic should normalise to none: %q vs %q", k1, k2)
	}
	if k2 == k3 || k2 == k4 {
		t.Fatalf("keys must differ by depth and heuristic")
	}
}

func TestLRUCacheEvicts(t *testing.T) {
	ctx := context.Background()
	c, err := NewLRUCache(2)
	if err != nil {
		t.Fatalf("NewLRUCache: %v", err)
	}

	c.Set(ctx, "a", SearchResult{Column: 1, Score: 10})
	c.Set(ctx, "b", SearchResult{Column: 2, Score: 20})
	if _, ok, _ := c.Get(ctx, "a"); !ok {
		t.Fatalf("expected a to be cached")
	}
	c.Set(ctx, "c", SearchResult{Column: 3, Score: 30})

	if _, ok, _ := c.Get(ctx, "b"); ok {
		t.Fatalf("b was least recently used and should be evicted")
	}
	res, ok, err := c.Get(ctx, "a")
	if err != nil || !ok || res.Column != 1 || res.Score != 10 {
		t.Fatalf("unexpected entry for a: %+v %v %v", res, ok, err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestNewLRUCacheRejectsZeroSize(t *testing.T) {
	if _, err := NewLRUCache(0); err == nil {
		t.Fatalf("expected an error for size 0")
	}
}

func TestTieredCacheBackfills(t *testing.T) {
	ctx := context.Background()
	fast, _ := NewLRUCache(8)
	slow := newCountingCache()
	slow.data["k"] = SearchResult{Column: 4, Score: 7}

	tiered := NewTieredCache(fast, nil, slow)

	res, ok, err := tiered.Get(ctx, "k")
	if err != nil || !ok || res.Column != 4 {
		t.Fatalf("expected hit from slow tier, got %+v %v %v", res, ok, err)
	}
	if _, ok, _ := fast.Get(ctx, "k"); !ok {
		t.Fatalf("hit in slow tier should be copied into fast tier")
	}

	tiered.Get(ctx, "k")
	if slow.gets != 1 {
		t.Fatalf("second lookup should be served by the fast tier, slow saw %d gets", slow.gets)
	}
}

func TestTieredCacheSkipsFailingTier(t *testing.T) {
	ctx := context.Background()
	broken := newCountingCache()
	broken.getErr = errors.New("redis down")
	fast, _ := NewLRUCache(8)

	tiered := NewTieredCache(broken, fast)
	if err := tiered.Set(ctx, "k", SearchResult{Column: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, ok, err := tiered.Get(ctx, "k")
	if err != nil || !ok || res.Column != 2 {
		t.Fatalf("expected hit despite broken tier, got %+v %v %v", res, ok, err)
	}

	if _, ok, err := tiered.Get(ctx, "missing"); ok || err == nil {
		t.Fatalf("a miss should surface the broken tier's error, got ok=%v err=%v", ok, err)
	}
}
