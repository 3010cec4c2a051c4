package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/landau-swap/landau/testutil/keeper"
	"github.com/landau-swap/landau/x/batchswap/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)
	require.NoError(t, k.SetParams(ctx, types.NewParams(50, 3)))

	pool := keepertest.CreateFundedPool(t, k, ctx, authority, mintA, mintB,
		types.CurveKindExponential, math.NewInt(1_000_000), math.NewInt(3_000_000))
	_, err := k.PlaceOrder(ctx, trader, pool.Id, types.DirectionAForB, math.NewInt(1_000))
	require.NoError(t, err)
	_, err = k.SettleBatch(ctx, trader, pool.Id)
	require.NoError(t, err)
	_, err = k.PlaceOrder(ctx, trader, pool.Id, types.DirectionBForA, math.NewInt(2_000))
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pools, 1)
	require.Len(t, exported.Pools[0].PendingOrders, 1)

	k2, ctx2 := keepertest.BatchSwapKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)

	// the imported queue settles exactly like the exported one would
	want, err := k.QuoteBatch(ctx, pool.Id)
	require.NoError(t, err)
	got, err := k2.QuoteBatch(ctx2, pool.Id)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)

	pool := types.NewPool(types.PoolID(mintA, mintB), authority, mintA, mintB, "va", "vb", types.CurveKindRational)
	pool.Id = types.PoolID(mintB, mintA)

	gs := types.GenesisState{Params: types.DefaultParams(), Pools: []types.Pool{pool}}
	require.ErrorIs(t, k.InitGenesis(ctx, gs), types.ErrInvalidGenesis)

	gs = types.GenesisState{Params: types.NewParams(0, 1)}
	require.ErrorIs(t, k.InitGenesis(ctx, gs), types.ErrInvalidGenesis)
}

func TestExportDefaultGenesis(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)

	gs, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultGenesis(), gs)
}
