package bot

import (
	"context"
	"fmt"
	"log"

	lru "github.com/hashicorp/golang-lru"
)

// Cache stores root search results. Implementations must be safe for
// concurrent use. A miss is reported with ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (SearchResult, bool, error)
	Set(ctx context.Context, key string, result SearchResult) error
}

// CacheKey identifies a root search: the position, how deep it was searched
// and which evaluator scored the leaves.
func CacheKey(boardKey string, depth int, heuristic string) string {
	if heuristic == "" {
		heuristic = "none"
	}
	return fmt.Sprintf("%s:d%d:%s", boardKey, depth, heuristic)
}

// LRUCache keeps the most recently used results in process memory.
type LRUCache struct {
	cache *lru.Cache
}

func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}
	return &LRUCache{cache: c}, nil
}

func (c *LRUCache) Get(_ context.Context, key string) (SearchResult, bool, error) {
	val, ok := c.cache.Get(key)
	if !ok {
		return SearchResult{}, false, nil
	}
	return val.(SearchResult), true, nil
}

func (c *LRUCache) Set(_ context.Context, key string, result SearchResult) error {
	c.cache.Add(key, result)
	return nil
}

func (c *LRUCache) Len() int {
	return c.cache.Len()
}

// TieredCache checks its tiers in order. A hit in a later tier is copied into
// the earlier ones, and writes go to every tier.
type TieredCache struct {
	tiers []Cache
}

func NewTieredCache(tiers ...Cache) *TieredCache {
	var kept []Cache
	for _, t := range tiers {
		if t != nil {
			kept = append(kept, t)
		}
	}
	return &TieredCache{tiers: kept}
}

func (t *TieredCache) Get(ctx context.Context, key string) (SearchResult, bool, error) {
	var firstErr error
	for i, tier := range t.tiers {
		res, ok, err := tier.Get(ctx, key)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !ok {
			continue
		}
		for _, faster := range t.tiers[:i] {
			if err := faster.Set(ctx, key, res); err != nil {
				log.Printf("[CACHE] Failed to backfill %s: %v", key, err)
			}
		}
		return res, true, nil
	}
	return SearchResult{}, false, firstErr
}

func (t *TieredCache) Set(ctx context.Context, key string, result SearchResult) error {
	var firstErr error
	for _, tier := range t.tiers {
		if err := tier.Set(ctx, key, result); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
