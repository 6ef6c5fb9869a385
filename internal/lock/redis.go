package lock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "checkout:lock:"

type redisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) Locker {
	return &redisLocker{client: client}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) error {
	ok, err := l.client.SetNX(ctx, keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyLocked
	}
	return nil
}

func (l *redisLocker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, keyPrefix+key).Err()
}
