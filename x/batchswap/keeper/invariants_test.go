package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/landau-swap/landau/testutil/keeper"
	"github.com/landau-swap/landau/x/batchswap/keeper"
	"github.com/landau-swap/landau/x/batchswap/types"
)

func TestInvariantsHoldAfterActivity(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)

	pool := keepertest.CreateFundedPool(t, k, ctx, authority, mintA, mintB,
		types.CurveKindRational, math.NewInt(1_000_000), math.NewInt(1_000_000))
	_, err := k.PlaceOrder(ctx, trader, pool.Id, types.DirectionAForB, math.NewInt(100_000))
	require.NoError(t, err)
	_, err = k.SettleBatch(ctx, trader, pool.Id)
	require.NoError(t, err)
	_, err = k.PlaceOrder(ctx, trader, pool.Id, types.DirectionBForA, math.NewInt(10))
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)
}

func TestPositiveReservesInvariantDetectsEmptyPool(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)

	pool := keepertest.CreateFundedPool(t, k, ctx, authority, mintA, mintB,
		types.CurveKindRational, math.NewInt(10), math.NewInt(10))
	pool.ReserveB = math.ZeroInt()
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken := keeper.PositiveReservesInvariant(*k)(ctx)
	require.True(t, broken)
	_, broken = keeper.PoolRecordsInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestQueueBoundInvariant(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)

	pool := keepertest.CreateFundedPool(t, k, ctx, authority, mintA, mintB,
		types.CurveKindRational, math.NewInt(1_000), math.NewInt(1_000))
	for i := 0; i < 3; i++ {
		_, err := k.PlaceOrder(ctx, trader, pool.Id, types.DirectionAForB, math.NewInt(1))
		require.NoError(t, err)
	}

	_, broken := keeper.QueueBoundInvariant(*k)(ctx)
	require.False(t, broken)

	require.NoError(t, k.SetParams(ctx, types.NewParams(2, 1)))
	_, broken = keeper.QueueBoundInvariant(*k)(ctx)
	require.True(t, broken)
}
