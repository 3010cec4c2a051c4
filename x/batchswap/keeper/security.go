package keeper

import (
	"sync"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// ReentrancyGuard is an in-memory set of named locks. The keeper holds one
// per pool while a settlement runs.
type ReentrancyGuard struct {
	mu    sync.Mutex
	locks map[string]struct{}
}

// NewReentrancyGuard creates a new guard instance.
func NewReentrancyGuard() *ReentrancyGuard {
	return &ReentrancyGuard{locks: make(map[string]struct{})}
}

// Lock acquires a named lock or returns ErrSettlementInProgress if already held.
func (g *ReentrancyGuard) Lock(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.locks[key]; exists {
		return types.ErrSettlementInProgress.Wrapf("settlement in progress for pool %s", key)
	}

	g.locks[key] = struct{}{}
	return nil
}

// Unlock releases a named lock.
func (g *ReentrancyGuard) Unlock(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.locks, key)
}

// Held reports whether key is currently locked.
func (g *ReentrancyGuard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.locks[key]
	return ok
}

// WithSettlementLock runs fn while holding the settlement lock of poolID.
// The lock is released on every exit path, including a panic in fn.
func (k Keeper) WithSettlementLock(poolID string, fn func() error) error {
	if err := k.guard.Lock(poolID); err != nil {
		return err
	}
	defer k.guard.Unlock(poolID)

	return fn()
}

// checkNotSettling fails with ErrSettlementInProgress while poolID is locked.
func (k Keeper) checkNotSettling(poolID string) error {
	if k.guard.Held(poolID) {
		return types.ErrSettlementInProgress.Wrapf("pool %s is settling", poolID)
	}
	return nil
}
