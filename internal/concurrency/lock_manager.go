// Package concurrency provides in-process keyed locking.
package concurrency

import (
	"context"
	"sync"
)

type keyedLock struct {
	ch   chan struct{}
	refs int
}

// LockManager hands out one lock per key. Entries are dropped once no caller
// holds or waits on them, so the key space may be unbounded.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

// Lock blocks until the lock for key is held or ctx is done.
// The returned function releases the lock and must be called exactly once.
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{ch: make(chan struct{}, 1)}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
	case <-ctx.Done():
		lm.release(key, l)
		return nil, ctx.Err()
	}

	return func() {
		<-l.ch
		lm.release(key, l)
	}, nil
}

func (lm *LockManager) release(key string, l *keyedLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}

// Len returns the number of keys currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
