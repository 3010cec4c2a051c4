package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// EndBlocker is called at the end of every block.
// It settles every pool whose batch window has elapsed. A failing pool is
// logged and keeps its queue for the next block; it never halts the chain.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		sdkCtx.Logger().Error("failed to load batchswap params", "error", err)
		return nil
	}
	if params.BatchWindowBlocks == 0 {
		return nil
	}

	due, err := k.poolsDueForSettlement(ctx, sdkCtx.BlockHeight(), params.BatchWindowBlocks)
	if err != nil {
		sdkCtx.Logger().Error("failed to scan pools for settlement", "error", err)
		// Don't return error - log and continue
	}

	var settled, failed int
	for _, poolID := range due {
		if _, err := k.SettleBatch(ctx, types.ModuleName, poolID); err != nil {
			failed++
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypeBatchSettlementFailed,
					sdk.NewAttribute(types.AttributeKeyPoolID, poolID),
					sdk.NewAttribute(types.AttributeKeyError, err.Error()),
				),
			)
			continue
		}
		settled++
	}

	if len(due) > 0 {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBatchSettlementEndBlock,
				sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", sdkCtx.BlockHeight())),
				sdk.NewAttribute(types.AttributeKeySettledCount, fmt.Sprintf("%d", settled)),
				sdk.NewAttribute(types.AttributeKeyFailedCount, fmt.Sprintf("%d", failed)),
			),
		)
	}
	return nil
}

// poolsDueForSettlement lists pools with pending orders whose last
// settlement is at least window blocks old.
func (k Keeper) poolsDueForSettlement(ctx context.Context, height int64, window uint64) ([]string, error) {
	var due []string
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		if len(pool.PendingOrders) == 0 || height < pool.LastSettledHeight {
			return false
		}
		if uint64(height-pool.LastSettledHeight) >= window {
			due = append(due, pool.Id)
		}
		return false
	})
	return due, err
}
