package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestConnectRejectsBadURL(t *testing.T) {
	if _, err := Connect(context.Background(), Options{URL: "redis://localhost:6379/not-a-db"}); err == nil {
		t.Fatalf("expected an error for an invalid database number")
	}
}

func TestConnectUnreachable(t *testing.T) {
	client, err := Connect(context.Background(), Options{URL: "127.0.0.1:1"})
	if err == nil {
		client.Close()
		t.Fatalf("expected an error for an unreachable server")
	}
	if client != nil {
		t.Fatalf("no client should be returned on failure")
	}
}

func newTestCache(t *testing.T, url string) *RedisCache {
	t.Helper()
	client, err := Connect(context.Background(), Options{URL: url})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	c := NewRedisCache(client)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCacheMissingKeyIsNotAnError(t *testing.T) {
	mr := miniredis.RunT(t)
	c := newTestCache(t, mr.Addr())

	val, ok, err := c.Get(context.Background(), "connect4:search:nothing")
	if err != nil || ok || val != "" {
		t.Fatalf("expected a clean miss, got %q ok=%v err=%v", val, ok, err)
	}
}

func TestRedisCacheSetGetDel(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	c := newTestCache(t, "redis://"+mr.Addr())

	if err := c.Set(ctx, "k", `{"column":3,"score":0}`, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mr.TTL("k"); ttl != time.Minute {
		t.Fatalf("expected a one minute ttl, got %s", ttl)
	}

	val, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || val != `{"column":3,"score":0}` {
		t.Fatalf("unexpected Get result %q ok=%v err=%v", val, ok, err)
	}

	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected a miss after Del, got ok=%v err=%v", ok, err)
	}
}

func TestRedisCacheNoExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := newTestCache(t, mr.Addr())

	if err := c.Set(context.Background(), "k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mr.TTL("k"); ttl != 0 {
		t.Fatalf("a zero expiration must not set a ttl, got %s", ttl)
	}
}

func TestRedisCacheGetReportsServerErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	c := newTestCache(t, mr.Addr())

	mr.SetError("ERR injected failure")
	_, ok, err := c.Get(context.Background(), "k")
	if err == nil || ok {
		t.Fatalf("expected the server error to be returned, got ok=%v err=%v", ok, err)
	}
}
