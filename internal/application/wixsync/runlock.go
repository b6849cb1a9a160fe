package wixsync

import (
	"context"
	"sync"

	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// RunLock guards against two sync runs mutating the catalog concurrently.
// Acquire returns syncdomain.ErrRunInProgress when another run already holds
// the lock; it never blocks.
type RunLock interface {
	Acquire(ctx context.Context) (release func(), err error)
}

// InProcessRunLock serializes runs within a single process. Deployments with
// one API instance need nothing more; multi-instance deployments should use
// the Redis-backed lock instead.
type InProcessRunLock struct {
	mu sync.Mutex
}

// NewInProcessRunLock creates an in-process run lock.
func NewInProcessRunLock() *InProcessRunLock {
	return &InProcessRunLock{}
}

// Acquire attempts to take the lock without blocking.
func (l *InProcessRunLock) Acquire(_ context.Context) (func(), error) {
	if !l.mu.TryLock() {
		return nil, syncdomain.ErrRunInProgress
	}
	return l.mu.Unlock, nil
}

var _ RunLock = (*InProcessRunLock)(nil)
