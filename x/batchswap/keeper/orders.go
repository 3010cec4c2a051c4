package keeper

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// PlaceOrder appends an order to the pool's pending queue and returns its
// sequence number. Reserves and fees are not touched until settlement.
func (k Keeper) PlaceOrder(ctx context.Context, trader, poolID string, direction types.Direction, amount math.Int) (uint64, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return 0, types.ErrZeroAmount.Wrap("order amount must be positive")
	}
	if !direction.IsValid() {
		return 0, types.ErrInvalidDirection.Wrapf("%s", direction)
	}

	pool, err := k.loadMutablePool(ctx, poolID)
	if err != nil {
		return 0, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	if len(pool.PendingOrders) >= int(params.MaxBatchSize) {
		return 0, types.ErrQueueFull.Wrapf("pool %s already holds %d orders", pool.Id, len(pool.PendingOrders))
	}

	// the netting sums must stay representable
	total := amount
	for _, o := range pool.PendingOrders {
		if o.Direction != direction {
			continue
		}
		if total, err = types.SafeAdd(total, o.Amount); err != nil {
			return 0, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	order := types.Order{
		Trader:       trader,
		Direction:    direction,
		Amount:       amount,
		Sequence:     pool.NextSequence,
		PlacedHeight: sdkCtx.BlockHeight(),
	}
	pool.PendingOrders = append(pool.PendingOrders, order)
	pool.NextSequence++

	cacheCtx, writeFn := sdkCtx.CacheContext()
	if err := k.SetPool(cacheCtx, pool); err != nil {
		return 0, err
	}
	if k.hooks != nil {
		if err := k.hooks.AfterOrderPlaced(cacheCtx, pool, order); err != nil {
			return 0, fmt.Errorf("PlaceOrder: hook: %w", err)
		}
	}
	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderPlaced,
			sdk.NewAttribute(types.AttributeKeyPoolID, pool.Id),
			sdk.NewAttribute(types.AttributeKeyTrader, trader),
			sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(order.Sequence, 10)),
		),
	)
	k.metrics.OrdersPlaced.WithLabelValues(pool.Id, direction.String()).Inc()
	k.metrics.QueueDepth.WithLabelValues(pool.Id).Set(float64(len(pool.PendingOrders)))

	return order.Sequence, nil
}

// PendingOrders returns the queued orders of a pool in sequence order.
func (k Keeper) PendingOrders(ctx context.Context, poolID string) ([]types.Order, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return pool.PendingOrders, nil
}
