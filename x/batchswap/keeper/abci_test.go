package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/landau-swap/landau/testutil/keeper"
	"github.com/landau-swap/landau/x/batchswap/types"
)

func hasEvent(ctx sdk.Context, eventType string) bool {
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			return true
		}
	}
	return false
}

func TestEndBlockerSettlesDuePools(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)
	require.NoError(t, k.SetParams(ctx, types.NewParams(100, 2)))

	pool := keepertest.CreateFundedPool(t, k, ctx, authority, mintA, mintB,
		types.CurveKindRational, math.NewInt(1_000_000), math.NewInt(1_000_000))
	_, err := k.PlaceOrder(ctx, trader, pool.Id, types.DirectionAForB, math.NewInt(1_000))
	require.NoError(t, err)

	// height 1: the window since height 0 has not elapsed
	require.NoError(t, k.EndBlocker(ctx))
	stored, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Len(t, stored.PendingOrders, 1)

	ctx = ctx.WithBlockHeight(2).WithEventManager(sdk.NewEventManager())
	require.NoError(t, k.EndBlocker(ctx))
	stored, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Empty(t, stored.PendingOrders)
	require.Equal(t, int64(2), stored.LastSettledHeight)
	require.True(t, hasEvent(ctx, types.EventTypeBatchSettled))
	require.True(t, hasEvent(ctx, types.EventTypeBatchSettlementEndBlock))

	// next window starts from the last settlement
	_, err = k.PlaceOrder(ctx, trader, pool.Id, types.DirectionAForB, math.NewInt(1_000))
	require.NoError(t, err)
	ctx = ctx.WithBlockHeight(3)
	require.NoError(t, k.EndBlocker(ctx))
	stored, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Len(t, stored.PendingOrders, 1)
}

func TestEndBlockerContinuesPastFailures(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)

	bad := keepertest.CreateFundedPool(t, k, ctx, authority, mintA, mintB,
		types.CurveKindRational, math.NewInt(1_000), math.NewInt(1_000))
	good := keepertest.CreateFundedPool(t, k, ctx, authority, "mint-c", "mint-d",
		types.CurveKindRational, math.NewInt(1_000_000), math.NewInt(1_000_000))

	_, err := k.PlaceOrder(ctx, trader, bad.Id, types.DirectionAForB, math.NewInt(5_000))
	require.NoError(t, err)
	_, err = k.PlaceOrder(ctx, trader, good.Id, types.DirectionAForB, math.NewInt(5_000))
	require.NoError(t, err)

	ctx = ctx.WithBlockHeight(5).WithEventManager(sdk.NewEventManager())
	require.NoError(t, k.EndBlocker(ctx))

	storedBad, err := k.GetPool(ctx, bad.Id)
	require.NoError(t, err)
	require.Len(t, storedBad.PendingOrders, 1, "failed batch stays queued")

	storedGood, err := k.GetPool(ctx, good.Id)
	require.NoError(t, err)
	require.Empty(t, storedGood.PendingOrders)
	require.True(t, hasEvent(ctx, types.EventTypeBatchSettlementFailed))
}

func TestEndBlockerDisabled(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)
	require.NoError(t, k.SetParams(ctx, types.NewParams(100, 0)))

	pool := keepertest.CreateFundedPool(t, k, ctx, authority, mintA, mintB,
		types.CurveKindRational, math.NewInt(1_000_000), math.NewInt(1_000_000))
	_, err := k.PlaceOrder(ctx, trader, pool.Id, types.DirectionAForB, math.NewInt(1_000))
	require.NoError(t, err)

	require.NoError(t, k.EndBlocker(ctx.WithBlockHeight(100)))
	stored, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Len(t, stored.PendingOrders, 1)
}
