package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// Keeper of the batchswap store
type Keeper struct {
	storeKey storetypes.StoreKey
	hooks    types.BatchSwapHooks

	// guard is shared by every copy of the keeper so that a settlement in
	// flight is visible to calls made from its hooks.
	guard   *ReentrancyGuard
	metrics *BatchSwapMetrics
}

// NewKeeper creates a new batchswap Keeper instance
func NewKeeper(key storetypes.StoreKey) *Keeper {
	return &Keeper{
		storeKey: key,
		guard:    NewReentrancyGuard(),
		metrics:  NewBatchSwapMetrics(),
	}
}

// SetHooks sets the batchswap hooks. It panics if hooks were already set.
func (k *Keeper) SetHooks(h types.BatchSwapHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set batchswap hooks twice")
	}
	k.hooks = h
	return k
}

// GetHooks returns the registered hooks, or nil.
func (k Keeper) GetHooks() types.BatchSwapHooks {
	return k.hooks
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// getStore returns the KVStore for the batchswap module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
