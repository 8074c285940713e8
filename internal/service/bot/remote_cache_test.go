package bot

import (
	"context"
	"testing"
	"time"
)

type memoryKV struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memoryKV) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
		delete(m.ttls, k)
	}
	return nil
}

func TestRemoteCacheStoresJSONWithTTL(t *testing.T) {
	ctx := context.Background()
	kv := &memoryKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
	c := NewRemoteCache(kv, time.Hour)

	if _, ok, err := c.Get(ctx, "pos"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "pos", SearchResult{Column: 5, Score: -3}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	stored := kv.values[remoteKeyPrefix+"pos"]
	if stored != `{"column":5,"score":-3}` {
		t.Fatalf("unexpected stored value %q", stored)
	}
	if kv.ttls[remoteKeyPrefix+"pos"] != time.Hour {
		t.Fatalf("ttl not forwarded")
	}

	res, ok, err := c.Get(ctx, "pos")
	if err != nil || !ok || res.Column != 5 || res.Score != -3 {
		t.Fatalf("unexpected result %+v %v %v", res, ok, err)
	}
}

func TestRemoteCacheCorruptEntry(t *testing.T) {
	kv := &memoryKV{values: map[string]string{remoteKeyPrefix + "bad": "not json"}, ttls: map[string]time.Duration{}}
	c := NewRemoteCache(kv, 0)
	if _, ok, err := c.Get(context.Background(), "bad"); ok || err == nil {
		t.Fatalf("expected an error for a corrupt entry")
	}
	if _, ok := kv.values[remoteKeyPrefix+"bad"]; ok {
		t.Fatalf("corrupt entry should have been evicted")
	}
	if _, ok, err := c.Get(context.Background(), "bad"); ok || err != nil {
		t.Fatalf("expected a clean miss after eviction, got ok=%v err=%v", ok, err)
	}
}
