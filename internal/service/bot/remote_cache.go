package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

const remoteKeyPrefix = "connect4:search:"

// KVStore is a string key/value store with expiry, such as Redis.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// RemoteCache stores search results as JSON in a shared KVStore so several
// processes can reuse each other's searches.
type RemoteCache struct {
	store KVStore
	ttl   time.Duration
}

func NewRemoteCache(store KVStore, ttl time.Duration) *RemoteCache {
	return &RemoteCache{store: store, ttl: ttl}
}

func (c *RemoteCache) Get(ctx context.Context, key string) (SearchResult, bool, error) {
	raw, ok, err := c.store.Get(ctx, remoteKeyPrefix+key)
	if err != nil || !ok {
		return SearchResult{}, false, err
	}

	var res SearchResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		// drop it so the next search overwrites instead of failing again
		if delErr := c.store.Del(ctx, remoteKeyPrefix+key); delErr != nil {
			log.Printf("[CACHE] Failed to evict corrupt entry %s: %v", key, delErr)
		}
		return SearchResult{}, false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	return res, true, nil
}

func (c *RemoteCache) Set(ctx context.Context, key string, result SearchResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, remoteKeyPrefix+key, string(raw), c.ttl)
}
