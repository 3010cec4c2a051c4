package batchswap_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/landau-swap/landau/testutil/keeper"
	"github.com/landau-swap/landau/x/batchswap"
	"github.com/landau-swap/landau/x/batchswap/types"
)

type routeRecorder struct {
	routes []string
}

func (r *routeRecorder) RegisterRoute(moduleName, route string, _ sdk.Invariant) {
	r.routes = append(r.routes, moduleName+"/"+route)
}

func TestModuleGenesis(t *testing.T) {
	var basic batchswap.AppModuleBasic
	require.Equal(t, types.ModuleName, basic.Name())

	bz := basic.DefaultGenesis(nil)
	require.NoError(t, basic.ValidateGenesis(nil, nil, bz))
	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`{"params":{"max_batch_size":0}}`)))
	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`not json`)))

	authority := keepertest.TestAddress("authority")
	k, ctx := keepertest.BatchSwapKeeper(t)
	pool := keepertest.CreateFundedPool(t, k, ctx, authority, "mint-a", "mint-b",
		types.CurveKindRational, math.NewInt(1_000_000), math.NewInt(1_000_000))
	_, err := k.PlaceOrder(ctx, keepertest.TestAddress("trader"), pool.Id, types.DirectionAForB, math.NewInt(1_000))
	require.NoError(t, err)

	exported := batchswap.NewAppModule(*k).ExportGenesis(ctx, nil)
	require.NoError(t, basic.ValidateGenesis(nil, nil, exported))

	k2, ctx2 := keepertest.BatchSwapKeeper(t)
	am2 := batchswap.NewAppModule(*k2)
	am2.InitGenesis(ctx2, nil, exported)

	restored, err := k2.GetPool(ctx2, pool.Id)
	require.NoError(t, err)
	require.Len(t, restored.PendingOrders, 1)
	require.Equal(t, math.NewInt(1_000_000), restored.ReserveA)

	require.Panics(t, func() {
		am2.InitGenesis(ctx2, nil, json.RawMessage(`{"params":{"max_batch_size":0}}`))
	})
}

func TestModuleEndBlockAndInvariants(t *testing.T) {
	k, ctx := keepertest.BatchSwapKeeper(t)
	am := batchswap.NewAppModule(*k)
	require.Equal(t, uint64(1), am.ConsensusVersion())

	pool := keepertest.CreateFundedPool(t, k, ctx, keepertest.TestAddress("authority"), "mint-a", "mint-b",
		types.CurveKindExponential, math.NewInt(1_000_000), math.NewInt(1_000_000))
	_, err := k.PlaceOrder(ctx, keepertest.TestAddress("trader"), pool.Id, types.DirectionBForA, math.NewInt(2_000))
	require.NoError(t, err)

	require.NoError(t, am.EndBlock(ctx))
	stored, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Empty(t, stored.PendingOrders)
	require.Equal(t, uint64(1), stored.BatchId)

	rec := &routeRecorder{}
	am.RegisterInvariants(rec)
	require.ElementsMatch(t, []string{
		"batchswap/positive-reserves",
		"batchswap/pool-records",
		"batchswap/queue-bound",
	}, rec.routes)
}
