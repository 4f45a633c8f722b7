package store

import (
	"context"
	"errors"
	"time"

	"assessment_checkout/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps checkout state in Redis so several service replicas share it.
// Expiry is delegated to Redis key TTLs.
type RedisStore struct {
	client redis.Cmdable
}

var _ interfaces.IKeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	k, err := scopedKey(ctx, key)
	if err != nil {
		return nil, false, err
	}
	data, err := s.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	k, err := scopedKey(ctx, key)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, k, value, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, key := range keys {
		k, err := scopedKey(ctx, key)
		if err != nil {
			return err
		}
		full = append(full, k)
	}
	return s.client.Del(ctx, full...).Err()
}
