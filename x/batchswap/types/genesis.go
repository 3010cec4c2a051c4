package types

// GenesisState defines the batchswap module's genesis state
type GenesisState struct {
	Params Params `json:"params"`
	Pools  []Pool `json:"pools"`
}

// DefaultGenesis returns the default genesis state for the batchswap module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Pools:  []Pool{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return ErrInvalidGenesis.Wrapf("params: %v", err)
	}

	seen := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("pool %s: %v", pool.Id, err)
		}
		if len(pool.PendingOrders) > int(gs.Params.MaxBatchSize) {
			return ErrInvalidGenesis.Wrapf("pool %s: %d pending orders exceed max batch size %d",
				pool.Id, len(pool.PendingOrders), gs.Params.MaxBatchSize)
		}
		if _, dup := seen[pool.Id]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate pool %s for pair %s/%s", pool.Id, pool.MintA, pool.MintB)
		}
		seen[pool.Id] = struct{}{}
	}
	return nil
}
