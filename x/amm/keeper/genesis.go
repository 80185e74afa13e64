package keeper

import (
	"context"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

// GenesisPool pairs a pool with its id for import/export
type GenesisPool struct {
	PoolID uint64     `json:"pool_id"`
	Pool   types.Pool `json:"pool"`
}

// GenesisState is the full exportable state of the venue
type GenesisState struct {
	Params types.Params  `json:"params"`
	Pools  []GenesisPool `json:"pools"`
}

// ExportGenesis snapshots the venue parameters and every stored pool
func (k *Keeper) ExportGenesis(ctx context.Context) (*GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	var pools []GenesisPool
	err = k.IteratePools(ctx, func(poolID uint64, pool types.Pool) bool {
		pools = append(pools, GenesisPool{PoolID: poolID, Pool: pool})
		return false
	})
	if err != nil {
		return nil, err
	}
	return &GenesisState{Params: params, Pools: pools}, nil
}

// ImportGenesis restores a previously exported venue state. The pool counter is
// advanced past the highest imported id so new pools never collide.
func (k *Keeper) ImportGenesis(ctx context.Context, state *GenesisState) error {
	if err := k.SetParams(ctx, state.Params); err != nil {
		return err
	}
	var maxID uint64
	for _, gp := range state.Pools {
		pool := gp.Pool
		if err := pool.Validate(); err != nil {
			return err
		}
		if err := k.SetPool(ctx, gp.PoolID, &pool); err != nil {
			return err
		}
		if gp.PoolID > maxID {
			maxID = gp.PoolID
		}
	}
	return k.SetNextPoolID(ctx, maxID+1)
}
