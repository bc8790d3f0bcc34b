package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockTTL        = 10 * time.Second
	lockRetryDelay = 50 * time.Millisecond
	lockAttempts   = 40
)

var ErrLockNotAcquired = errors.New("theatre lock not acquired")

// Lua compare-and-delete so a holder whose lock expired mid-operation
// cannot release a newer holder's lock.
var releaseLock = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// RedisTheatreLocker serializes writers of a single theatre aggregate. The
// registry performs whole-aggregate read-modify-write cycles, so concurrent
// writers to the same theatre must be mutually excluded.
type RedisTheatreLocker struct {
	client redis.UniversalClient
}

func NewRedisTheatreLocker(client redis.UniversalClient) *RedisTheatreLocker {
	return &RedisTheatreLocker{
		client: client,
	}
}

func (l *RedisTheatreLocker) WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	key := lockKey(name)
	token := uuid.NewString()

	acquired := false

	for i := 0; i < lockAttempts; i++ {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return fmt.Errorf("acquire theatre lock: %w", err)
		}

		if ok {
			acquired = true
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	if !acquired {
		return ErrLockNotAcquired
	}

	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()

		// Best effort: the TTL reclaims the lock if the release is lost.
		releaseLock.Run(releaseCtx, l.client, []string{key}, token)
	}()

	return fn(ctx)
}

func lockKey(name string) string {
	return "theatre_lock:" + name
}
