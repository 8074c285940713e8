package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	// URL is either host:port or a redis:// URL
	URL      string
	Password string
	DB       int
}

// Connect opens a client and pings it. When Redis is unreachable the client is
// closed and an error returned; callers fall back to the in-process cache.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	redisOpts := &redis.Options{
		Addr:     opts.URL,
		Password: opts.Password,
		DB:       opts.DB,
	}
	if strings.Contains(opts.URL, "://") {
		parsed, err := redis.ParseURL(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if opts.Password != "" {
			parsed.Password = opts.Password
		}
		redisOpts = parsed
	}

	client := redis.NewClient(redisOpts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", redisOpts.Addr, err)
	}

	log.Printf("[REDIS] Connected successfully to %s", redisOpts.Addr)
	return client, nil
}

// RedisCache is a thin string key/value wrapper around redis.Client
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Set stores a key-value pair with expiration
func (r *RedisCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key. A missing key is not an error.
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Del deletes keys
func (r *RedisCache) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
