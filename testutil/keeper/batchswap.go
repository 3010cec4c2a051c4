package keeper

import (
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/landau-swap/landau/x/batchswap/keeper"
	"github.com/landau-swap/landau/x/batchswap/types"
)

// NewInMemoryKeeper builds a batchswap keeper over an in-memory IAVL
// multistore and returns it with a context at height 1.
func NewInMemoryKeeper(logger log.Logger) (*keeper.Keeper, sdk.Context, error) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, sdk.Context{}, fmt.Errorf("load multistore: %w", err)
	}

	k := keeper.NewKeeper(storeKey)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, logger)

	if err := k.InitGenesis(ctx, *types.DefaultGenesis()); err != nil {
		return nil, sdk.Context{}, err
	}
	return k, ctx, nil
}

// BatchSwapKeeper creates a test keeper for the batchswap module
func BatchSwapKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	k, ctx, err := NewInMemoryKeeper(log.NewNopLogger())
	require.NoError(t, err)
	return k, ctx
}

// TestAddress returns a deterministic 20-byte bech32 address for name.
func TestAddress(name string) string {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz).String()
}

// CreateFundedPool initializes a pool for (mintA, mintB) owned by authority
// and deposits the given reserves.
func CreateFundedPool(
	t testing.TB,
	k *keeper.Keeper,
	ctx sdk.Context,
	authority, mintA, mintB string,
	kind types.CurveKind,
	reserveA, reserveB math.Int,
) types.Pool {
	pool, err := k.InitializePool(ctx, authority, mintA, mintB, "vault-"+mintA, "vault-"+mintB, kind)
	require.NoError(t, err)

	_, _, err = k.AddLiquidity(ctx, authority, pool.Id, reserveA, reserveB)
	require.NoError(t, err)

	pool, err = k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	return pool
}
