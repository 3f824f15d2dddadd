package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore returns a KVStore that keeps each history under
// "<prefix>history:<key>". Values never expire.
func NewRedisStore(rdb *redis.Client, prefix string) KVStore {
	return &redisStore{rdb: rdb, prefix: prefix}
}

func (r *redisStore) historyKey(key string) string { return fmt.Sprintf("%shistory:%s", r.prefix, key) }

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.rdb.Get(ctx, r.historyKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not read %q from redis: %w", key, err)
	}
	return val, nil
}

func (r *redisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, r.historyKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("could not write %q to redis: %w", key, err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.historyKey(key)).Err(); err != nil {
		return fmt.Errorf("could not delete %q from redis: %w", key, err)
	}
	return nil
}
