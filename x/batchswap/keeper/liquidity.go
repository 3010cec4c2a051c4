package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// AddLiquidity deposits exact amounts of both assets into the pool. No curve
// is evaluated and no fee is charged. Only the pool authority may deposit.
func (k Keeper) AddLiquidity(ctx context.Context, provider, poolID string, amountA, amountB math.Int) (math.Int, math.Int, error) {
	if amountA.IsNil() || amountB.IsNil() || !amountA.IsPositive() || !amountB.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("both deposit amounts must be positive")
	}

	pool, err := k.authorizedPool(ctx, provider, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	newA, err := types.SafeAdd(pool.ReserveA, amountA)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	newB, err := types.SafeAdd(pool.ReserveB, amountB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	pool.ReserveA = newA
	pool.ReserveB = newB
	pool.LiquidityInitialized = true

	if err := k.commitLiquidity(ctx, pool, provider, amountA, amountB, true); err != nil {
		return math.Int{}, math.Int{}, err
	}
	return pool.ReserveA, pool.ReserveB, nil
}

// RemoveLiquidity withdraws exact amounts of both assets. Either amount may
// be zero but not both, and neither reserve may reach zero.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider, poolID string, amountA, amountB math.Int) (math.Int, math.Int, error) {
	if amountA.IsNil() || amountB.IsNil() || amountA.IsNegative() || amountB.IsNegative() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("withdrawal amounts cannot be negative")
	}
	if amountA.IsZero() && amountB.IsZero() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("nothing to withdraw")
	}

	pool, err := k.authorizedPool(ctx, provider, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if amountA.GTE(pool.ReserveA) || amountB.GTE(pool.ReserveB) {
		return math.Int{}, math.Int{}, types.ErrInsufficientReserves.Wrapf(
			"withdrawing %s/%s from reserves %s/%s would empty the pool",
			amountA, amountB, pool.ReserveA, pool.ReserveB)
	}
	newA, err := types.SafeSub(pool.ReserveA, amountA)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	newB, err := types.SafeSub(pool.ReserveB, amountB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	pool.ReserveA = newA
	pool.ReserveB = newB

	if err := k.commitLiquidity(ctx, pool, provider, amountA, amountB, false); err != nil {
		return math.Int{}, math.Int{}, err
	}
	return pool.ReserveA, pool.ReserveB, nil
}

// authorizedPool loads the pool and checks, in order, that it exists, that
// provider is its authority and that no settlement is running.
func (k Keeper) authorizedPool(ctx context.Context, provider, poolID string) (types.Pool, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return types.Pool{}, err
	}
	if provider != pool.Authority {
		return types.Pool{}, types.ErrUnauthorized.Wrapf("%s is not the authority of pool %s", provider, pool.Id)
	}
	if err := k.checkNotSettling(pool.Id); err != nil {
		return types.Pool{}, err
	}
	return pool, nil
}

func (k Keeper) commitLiquidity(ctx context.Context, pool types.Pool, provider string, amountA, amountB math.Int, isAdd bool) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	if err := k.SetPool(cacheCtx, pool); err != nil {
		return err
	}
	if k.hooks != nil {
		if err := k.hooks.AfterLiquidityChanged(cacheCtx, pool, provider, amountA, amountB, isAdd); err != nil {
			return fmt.Errorf("liquidity hook: %w", err)
		}
	}
	writeFn()

	eventType, action := types.EventTypeLiquidityAdded, "add"
	if !isAdd {
		eventType, action = types.EventTypeLiquidityRemoved, "remove"
	}
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyPoolID, pool.Id),
			sdk.NewAttribute(types.AttributeKeyProvider, provider),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyReserveA, pool.ReserveA.String()),
			sdk.NewAttribute(types.AttributeKeyReserveB, pool.ReserveB.String()),
		),
	)
	k.metrics.LiquidityChanges.WithLabelValues(pool.Id, action).Inc()
	k.metrics.recordPool(pool)
	return nil
}
