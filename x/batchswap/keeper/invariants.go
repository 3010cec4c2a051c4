package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// RegisterInvariants registers all batchswap invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "positive-reserves", PositiveReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-records", PoolRecordsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "queue-bound", QueueBoundInvariant(k))
}

// AllInvariants runs all invariants of the batchswap module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PositiveReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PoolRecordsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return QueueBoundInvariant(k)(ctx)
	}
}

// PositiveReservesInvariant checks that funded pools keep both reserves above zero
func PositiveReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "positive-reserves", err.Error()), true
		}
		for _, pool := range pools {
			if !pool.LiquidityInitialized {
				continue
			}
			if !pool.ReserveA.IsPositive() || !pool.ReserveB.IsPositive() {
				count++
				msg += fmt.Sprintf("\tpool %s has reserves %s/%s\n", pool.Id, pool.ReserveA, pool.ReserveB)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "positive-reserves",
			fmt.Sprintf("found %d pools with empty reserves\n%s", count, msg),
		), broken
	}
}

// PoolRecordsInvariant checks every stored pool against its structural rules:
// derived id, amount range, queue ordering.
func PoolRecordsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-records", err.Error()), true
		}
		for _, pool := range pools {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("\tpool %s: %v\n", pool.Id, err)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-records",
			fmt.Sprintf("found %d malformed pools\n%s", count, msg),
		), broken
	}
}

// QueueBoundInvariant checks that no queue is longer than max_batch_size
func QueueBoundInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "queue-bound", err.Error()), true
		}
		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "queue-bound", err.Error()), true
		}
		for _, pool := range pools {
			if len(pool.PendingOrders) > int(params.MaxBatchSize) {
				count++
				msg += fmt.Sprintf("\tpool %s holds %d orders\n", pool.Id, len(pool.PendingOrders))
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "queue-bound",
			fmt.Sprintf("found %d pools over the batch size limit\n%s", count, msg),
		), broken
	}
}
