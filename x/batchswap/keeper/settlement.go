package keeper

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/landau-swap/landau/x/batchswap/curve"
	"github.com/landau-swap/landau/x/batchswap/types"
)

// NetOrders collapses a queue into a single net trade.
//
// Orders are summed per direction in queue order: VA is the A_FOR_B total
// in A and VB the B_FOR_A total in B. The net magnitude is |VA - VB| and
// the larger total gives the direction. Equal totals net to zero with
// DirectionUnspecified.
func NetOrders(orders []types.Order) (types.Direction, math.Int, error) {
	volA, volB := math.ZeroInt(), math.ZeroInt()
	var err error
	for _, o := range orders {
		switch o.Direction {
		case types.DirectionAForB:
			volA, err = types.SafeAdd(volA, o.Amount)
		case types.DirectionBForA:
			volB, err = types.SafeAdd(volB, o.Amount)
		default:
			err = types.ErrInvalidDirection.Wrapf("order %d: %s", o.Sequence, o.Direction)
		}
		if err != nil {
			return types.DirectionUnspecified, math.Int{}, err
		}
	}

	switch {
	case volA.GT(volB):
		net, err := types.SafeSub(volA, volB)
		return types.DirectionAForB, net, err
	case volB.GT(volA):
		net, err := types.SafeSub(volB, volA)
		return types.DirectionBForA, net, err
	default:
		return types.DirectionUnspecified, math.ZeroInt(), nil
	}
}

// SettleBatch nets every pending order of the pool, pushes the net through
// the pool's curve exactly once and clears the queue. Either all of
// reserves, fee accumulator and queue change or none do. An empty queue is
// a successful no-op.
func (k Keeper) SettleBatch(ctx context.Context, settler, poolID string) (types.BatchReceipt, error) {
	start := time.Now()
	lockKey := canonicalPoolID(poolID)

	var receipt types.BatchReceipt
	err := k.WithSettlementLock(lockKey, func() error {
		var err error
		receipt, err = k.settle(ctx, poolID)
		return err
	})
	if err != nil {
		k.metrics.BatchesSettled.WithLabelValues(failureLabel(lockKey, err), "failed").Inc()
		k.Logger(ctx).Error("batch settlement failed", "pool_id", poolID, "settler", settler, "error", err)
		return types.BatchReceipt{}, err
	}
	if receipt.IsEmpty() {
		k.metrics.BatchesSettled.WithLabelValues(receipt.PoolId, "empty").Inc()
		return receipt, nil
	}

	k.metrics.BatchesSettled.WithLabelValues(receipt.PoolId, "success").Inc()
	k.metrics.SettlementLatency.Observe(time.Since(start).Seconds())
	k.Logger(ctx).Info("batch settled",
		"pool_id", receipt.PoolId,
		"batch_id", receipt.BatchId,
		"orders", receipt.OrderCount,
		"net_direction", receipt.NetDirection.String(),
		"net_amount", receipt.NetAmount.String(),
		"fee_delta", receipt.FeeDelta.String(),
		"settler", settler,
	)
	return receipt, nil
}

func (k Keeper) settle(ctx context.Context, poolID string) (types.BatchReceipt, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return types.BatchReceipt{}, err
	}
	if len(pool.PendingOrders) == 0 {
		return emptyReceipt(pool), nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	settled, receipt, err := computeSettlement(pool, sdkCtx.BlockHeight())
	if err != nil {
		return types.BatchReceipt{}, err
	}

	cacheCtx, writeFn := sdkCtx.CacheContext()
	if err := k.SetPool(cacheCtx, settled); err != nil {
		return types.BatchReceipt{}, err
	}
	if k.hooks != nil {
		if err := k.hooks.AfterBatchSettled(cacheCtx, settled, receipt); err != nil {
			return types.BatchReceipt{}, fmt.Errorf("SettleBatch: hook: %w", err)
		}
	}
	writeFn()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBatchSettled,
			sdk.NewAttribute(types.AttributeKeyPoolID, receipt.PoolId),
			sdk.NewAttribute(types.AttributeKeyBatchID, strconv.FormatUint(receipt.BatchId, 10)),
			sdk.NewAttribute(types.AttributeKeyOrderCount, strconv.FormatUint(uint64(receipt.OrderCount), 10)),
			sdk.NewAttribute(types.AttributeKeyNetDirection, receipt.NetDirection.String()),
			sdk.NewAttribute(types.AttributeKeyNetAmount, receipt.NetAmount.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, receipt.AmountOut.String()),
			sdk.NewAttribute(types.AttributeKeyFeeDelta, receipt.FeeDelta.String()),
			sdk.NewAttribute(types.AttributeKeyReserveA, receipt.NewReserveA.String()),
			sdk.NewAttribute(types.AttributeKeyReserveB, receipt.NewReserveB.String()),
			sdk.NewAttribute(types.AttributeKeyAccumulatedFee, settled.AccumulatedFeeB.String()),
		),
	)
	if receipt.NetDirection.IsValid() {
		k.metrics.NettedVolume.WithLabelValues(receipt.PoolId, receipt.NetDirection.String()).Add(intToFloat(receipt.NetAmount))
	}
	k.metrics.FeesCollected.WithLabelValues(receipt.PoolId).Add(intToFloat(receipt.FeeDelta))
	k.metrics.recordPool(settled)

	return receipt, nil
}

// computeSettlement returns the pool as it would look after settling its
// queue at the given height, without touching the store.
func computeSettlement(pool types.Pool, height int64) (types.Pool, types.BatchReceipt, error) {
	dir, net, err := NetOrders(pool.PendingOrders)
	if err != nil {
		return types.Pool{}, types.BatchReceipt{}, err
	}

	res, err := curve.Evaluate(pool.CurveKind, pool.ReserveA, pool.ReserveB, net, dir)
	if err != nil {
		return types.Pool{}, types.BatchReceipt{}, err
	}
	fee, err := types.SafeAdd(pool.AccumulatedFeeB, res.FeeB)
	if err != nil {
		return types.Pool{}, types.BatchReceipt{}, err
	}

	settled := pool.Clone()
	settled.ReserveA = res.NewReserveA
	settled.ReserveB = res.NewReserveB
	settled.AccumulatedFeeB = fee
	settled.PendingOrders = []types.Order{}
	settled.BatchId++
	settled.LastSettledHeight = height

	receipt := types.BatchReceipt{
		PoolId:       pool.Id,
		BatchId:      settled.BatchId,
		OrderCount:   uint32(len(pool.PendingOrders)),
		NewReserveA:  res.NewReserveA,
		NewReserveB:  res.NewReserveB,
		FeeDelta:     res.FeeB,
		NetDirection: dir,
		NetAmount:    net,
		AmountOut:    res.AmountOut,
	}
	return settled, receipt, nil
}

func emptyReceipt(pool types.Pool) types.BatchReceipt {
	return types.BatchReceipt{
		PoolId:      pool.Id,
		BatchId:     pool.BatchId,
		NewReserveA: pool.ReserveA,
		NewReserveB: pool.ReserveB,
		FeeDelta:    math.ZeroInt(),
		NetAmount:   math.ZeroInt(),
		AmountOut:   math.ZeroInt(),
	}
}

// failureLabel keeps caller-supplied ids that name no pool out of the
// pool_id label set.
func failureLabel(lockKey string, err error) string {
	if errors.Is(err, types.ErrUninitialized) {
		return "unknown"
	}
	return lockKey
}

// canonicalPoolID normalises a bech32 pool id so that lock keys match the
// stored form regardless of input casing.
func canonicalPoolID(poolID string) string {
	addr, err := sdk.AccAddressFromBech32(poolID)
	if err != nil {
		return poolID
	}
	return addr.String()
}
