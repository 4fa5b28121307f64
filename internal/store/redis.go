package store

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

// Redis stores each collection under a prefixed key. It makes the store
// shareable between processes, but Write is still last-write-wins on the
// whole collection: a multi-writer deployment needs an optimistic
// concurrency token (WATCH/MULTI) before this backend is safe beyond a
// single writer.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(addr, prefix string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
	}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

func (r *Redis) Read(ctx context.Context, key string, v any) error {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return nil
	}
	return nil
}

func (r *Redis) Write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), raw, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}
