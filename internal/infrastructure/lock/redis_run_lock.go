package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/luxurahair/luxura-inventory-api/internal/application/wixsync"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// defaultLockTTL bounds how long a crashed run can keep the catalog locked
const defaultLockTTL = 30 * time.Minute

// releaseScript deletes the lock only when the caller still owns it, so a
// release arriving after TTL expiry cannot drop another run's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisRunLock implements wixsync.RunLock on a shared Redis key, so runs are
// serialized across API instances. Suitable for distributed deployments;
// single-instance deployments can use the in-process lock instead.
type RedisRunLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisRunLock creates a Redis-backed run lock. A non-positive ttl falls
// back to the default.
func NewRedisRunLock(client *redis.Client, key string, ttl time.Duration) *RedisRunLock {
	if key == "" {
		key = "sync:run:lock"
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisRunLock{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Acquire attempts to take the lock without blocking. The returned release
// func is safe to call after the TTL has expired.
func (l *RedisRunLock) Acquire(ctx context.Context) (func(), error) {
	token := uuid.NewString()

	// SETNX with TTL in a single atomic operation
	acquired, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("lock: failed to acquire run lock: %w", err)
	}
	if !acquired {
		return nil, syncdomain.ErrRunInProgress
	}

	release := func() {
		// Release is best-effort: the TTL reclaims the lock if this fails.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, l.client, []string{l.key}, token).Err()
	}
	return release, nil
}

// Ensure RedisRunLock implements the RunLock interface
var _ wixsync.RunLock = (*RedisRunLock)(nil)
