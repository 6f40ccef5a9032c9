package store

import (
    "context"
    "encoding/json"
    "log"

    "github.com/redis/go-redis/v9"
)

// RedisStore keeps each slot in a Redis string key. Keys are namespaced
// with a prefix so the slots coexist with the rate limiter and response
// cache on a shared Redis instance.
type RedisStore struct {
    rdb    *redis.Client
    prefix string
}

// NewRedisStore wraps an already-connected client. The prefix defaults to
// "bookswap" when empty.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
    if prefix == "" {
        prefix = "bookswap"
    }
    return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) key(slot string) string { return s.prefix + ":slot:" + slot }

func (s *RedisStore) Load(ctx context.Context, key string, v any) error {
    raw, err := s.rdb.Get(ctx, s.key(key)).Bytes()
    if err != nil {
        if err == redis.Nil {
            return ErrNotFound
        }
        log.Printf("store: redis get %q: %v", key, err)
        return ErrNotFound
    }
    if err := json.Unmarshal(raw, v); err != nil {
        log.Printf("store: slot %q is corrupt, treating as absent: %v", key, err)
        return ErrNotFound
    }
    return nil
}

func (s *RedisStore) Save(ctx context.Context, key string, v any) error {
    raw, err := json.Marshal(v)
    if err != nil {
        return err
    }
    // Slots are the durable copy, so no TTL.
    return s.rdb.Set(ctx, s.key(key), raw, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
    return s.rdb.Del(ctx, s.key(key)).Err()
}
