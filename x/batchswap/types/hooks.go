package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// BatchSwapHooks lets other modules react to pool state transitions. This is
// where the asset-transfer collaborator moves real balances in and out of
// the pool vaults.
//
// Hooks run inside the cache context of the operation that triggered them,
// after the new pool record has been staged. Returning an error discards the
// whole operation.
type BatchSwapHooks interface {
	AfterPoolInitialized(ctx context.Context, pool Pool) error

	// deltaA and deltaB are always non-negative; isAdd tells the direction.
	AfterLiquidityChanged(ctx context.Context, pool Pool, provider string, deltaA, deltaB sdkmath.Int, isAdd bool) error

	AfterOrderPlaced(ctx context.Context, pool Pool, order Order) error

	// AfterBatchSettled is called for every non-empty settlement.
	AfterBatchSettled(ctx context.Context, pool Pool, receipt BatchReceipt) error
}

// MultiBatchSwapHooks combines multiple hooks into a single hook that calls all of them.
type MultiBatchSwapHooks []BatchSwapHooks

// NewMultiBatchSwapHooks creates a new MultiBatchSwapHooks from a list of hooks.
func NewMultiBatchSwapHooks(hooks ...BatchSwapHooks) MultiBatchSwapHooks {
	return hooks
}

// AfterPoolInitialized calls AfterPoolInitialized on all registered hooks.
func (h MultiBatchSwapHooks) AfterPoolInitialized(ctx context.Context, pool Pool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPoolInitialized(ctx, pool); err != nil {
			return err
		}
	}
	return nil
}

// AfterLiquidityChanged calls AfterLiquidityChanged on all registered hooks.
func (h MultiBatchSwapHooks) AfterLiquidityChanged(ctx context.Context, pool Pool, provider string, deltaA, deltaB sdkmath.Int, isAdd bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterLiquidityChanged(ctx, pool, provider, deltaA, deltaB, isAdd); err != nil {
			return err
		}
	}
	return nil
}

// AfterOrderPlaced calls AfterOrderPlaced on all registered hooks.
func (h MultiBatchSwapHooks) AfterOrderPlaced(ctx context.Context, pool Pool, order Order) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterOrderPlaced(ctx, pool, order); err != nil {
			return err
		}
	}
	return nil
}

// AfterBatchSettled calls AfterBatchSettled on all registered hooks.
func (h MultiBatchSwapHooks) AfterBatchSettled(ctx context.Context, pool Pool, receipt BatchReceipt) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterBatchSettled(ctx, pool, receipt); err != nil {
			return err
		}
	}
	return nil
}
