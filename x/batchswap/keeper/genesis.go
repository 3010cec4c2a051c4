package keeper

import (
	"context"
	"fmt"

	"github.com/landau-swap/landau/x/batchswap/types"
)

// InitGenesis initializes the batchswap module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: set params: %w", err)
	}

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return fmt.Errorf("InitGenesis: set pool %s: %w", pool.Id, err)
		}
	}
	return nil
}

// ExportGenesis returns the batchswap module's exported genesis, pending
// queues included.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: get params: %w", err)
	}

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: get pools: %w", err)
	}
	if pools == nil {
		pools = []types.Pool{}
	}

	return &types.GenesisState{
		Params: params,
		Pools:  pools,
	}, nil
}
