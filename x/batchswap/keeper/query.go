package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// QuoteBatch previews the receipt SettleBatch would produce for the pool at
// the current height. Nothing is written and hooks are not called.
func (k Keeper) QuoteBatch(ctx context.Context, poolID string) (types.BatchReceipt, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return types.BatchReceipt{}, err
	}
	if len(pool.PendingOrders) == 0 {
		return emptyReceipt(pool), nil
	}

	_, receipt, err := computeSettlement(pool, sdk.UnwrapSDKContext(ctx).BlockHeight())
	return receipt, err
}

// SpotPrice returns reserveB / reserveA, the price of one unit of A in B.
func (k Keeper) SpotPrice(ctx context.Context, poolID string) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if !pool.ReserveA.IsPositive() || !pool.ReserveB.IsPositive() {
		return math.LegacyDec{}, types.ErrInsufficientReserves.Wrapf("pool %s has no liquidity", pool.Id)
	}
	if pool.ReserveB.BigInt().BitLen() > 190 {
		return math.LegacyDec{}, types.ErrArithmeticOverflow.Wrapf("reserve %s exceeds the fixed-point range", pool.ReserveB)
	}
	return math.LegacyNewDecFromInt(pool.ReserveB).QuoInt(pool.ReserveA), nil
}
