package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// InitializePool creates the pool for the ordered pair (mintA, mintB) with
// zero reserves, zero accumulated fee and an empty queue.
func (k Keeper) InitializePool(
	ctx context.Context,
	authority, mintA, mintB, vaultA, vaultB string,
	kind types.CurveKind,
) (types.Pool, error) {
	if !kind.IsValid() {
		return types.Pool{}, types.ErrInvalidCurveKind.Wrapf("%s", kind)
	}
	if err := types.ValidatePair(mintA, mintB); err != nil {
		return types.Pool{}, err
	}
	refs := []struct{ name, v string }{
		{"authority", authority},
		{"vault_a", vaultA},
		{"vault_b", vaultB},
	}
	for _, ref := range refs {
		if strings.TrimSpace(ref.v) == "" {
			return types.Pool{}, types.ErrInvalidPair.Wrapf("%s reference cannot be empty", ref.name)
		}
	}

	poolID := types.PoolID(mintA, mintB)
	if k.hasPool(ctx, types.PoolAddress(mintA, mintB)) {
		return types.Pool{}, types.ErrAlreadyInitialized.Wrapf("pool %s for %s/%s", poolID, mintA, mintB)
	}

	pool := types.NewPool(poolID, authority, mintA, mintB, vaultA, vaultB, kind)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()
	if err := k.SetPool(cacheCtx, pool); err != nil {
		return types.Pool{}, err
	}
	if k.hooks != nil {
		if err := k.hooks.AfterPoolInitialized(cacheCtx, pool); err != nil {
			return types.Pool{}, fmt.Errorf("InitializePool: hook: %w", err)
		}
	}
	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolInitialized,
			sdk.NewAttribute(types.AttributeKeyPoolID, pool.Id),
			sdk.NewAttribute(types.AttributeKeyAuthority, authority),
			sdk.NewAttribute(types.AttributeKeyMintA, mintA),
			sdk.NewAttribute(types.AttributeKeyMintB, mintB),
			sdk.NewAttribute(types.AttributeKeyCurveKind, kind.String()),
		),
	)
	k.metrics.PoolsTotal.Inc()
	k.Logger(ctx).Info("pool initialized", "pool_id", pool.Id, "mint_a", mintA, "mint_b", mintB, "curve", kind.String())

	return pool, nil
}

// GetPool returns the pool with the given id, or ErrUninitialized.
func (k Keeper) GetPool(ctx context.Context, poolID string) (types.Pool, error) {
	addr, err := sdk.AccAddressFromBech32(poolID)
	if err != nil {
		return types.Pool{}, types.ErrUninitialized.Wrapf("invalid pool id %q: %v", poolID, err)
	}
	return k.getPoolByAddress(ctx, addr)
}

// GetPoolByMints returns the pool for the ordered pair (mintA, mintB).
func (k Keeper) GetPoolByMints(ctx context.Context, mintA, mintB string) (types.Pool, error) {
	return k.getPoolByAddress(ctx, types.PoolAddress(mintA, mintB))
}

func (k Keeper) getPoolByAddress(ctx context.Context, addr []byte) (types.Pool, error) {
	bz := k.getStore(ctx).Get(types.PoolKey(addr))
	if bz == nil {
		return types.Pool{}, types.ErrUninitialized.Wrapf("pool %s not found", sdk.AccAddress(addr))
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, fmt.Errorf("GetPool: unmarshal pool: %w", err)
	}
	if pool.PendingOrders == nil {
		pool.PendingOrders = []types.Order{}
	}
	return pool, nil
}

func (k Keeper) hasPool(ctx context.Context, addr []byte) bool {
	return k.getStore(ctx).Has(types.PoolKey(addr))
}

// SetPool writes the whole pool record, queue included, with a single Set.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool: %w", err)
	}
	k.getStore(ctx).Set(types.PoolKey(types.PoolAddress(pool.MintA, pool.MintB)), bz)
	return nil
}

// IteratePools iterates over all pools in key order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if pool.PendingOrders == nil {
			pool.PendingOrders = []types.Order{}
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every pool in key order
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

// loadMutablePool fetches a pool for a mutating operation, refusing while
// the pool is settling.
func (k Keeper) loadMutablePool(ctx context.Context, poolID string) (types.Pool, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return types.Pool{}, err
	}
	if err := k.checkNotSettling(pool.Id); err != nil {
		return types.Pool{}, err
	}
	return pool, nil
}
