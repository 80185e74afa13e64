package keeper

import (
	"context"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

// poolUpdate pairs a pool id with its staged post-route snapshot
type poolUpdate struct {
	poolID uint64
	pool   *types.Pool
}

// routeStage holds the uncommitted pool copies touched by one routing
// operation. Hops against a pool already staged chain onto the staged snapshot
// rather than reloading stored state, so duplicate pool ids within a route
// compound correctly.
type routeStage struct {
	keeper *Keeper
	ctx    context.Context
	order  []uint64
	pools  map[uint64]*types.Pool
}

func (k *Keeper) newRouteStage(ctx context.Context) *routeStage {
	return &routeStage{
		keeper: k,
		ctx:    ctx,
		pools:  make(map[uint64]*types.Pool),
	}
}

func (s *routeStage) pool(poolID uint64) (*types.Pool, error) {
	if pool, ok := s.pools[poolID]; ok {
		return pool, nil
	}
	pool, err := s.keeper.GetPool(s.ctx, poolID)
	if err != nil {
		return nil, err
	}
	s.pools[poolID] = pool
	s.order = append(s.order, poolID)
	return pool, nil
}

func (s *routeStage) updates() []poolUpdate {
	updates := make([]poolUpdate, 0, len(s.order))
	for _, poolID := range s.order {
		updates = append(updates, poolUpdate{poolID: poolID, pool: s.pools[poolID]})
	}
	return updates
}

// routeSwaps executes a multi-hop swap over uncommitted pool copies and returns
// the final opposite-side amount plus the staged snapshots in first-touch
// order. Nothing is persisted here.
//
// An exact-in amount flows forward through the hops, each payout feeding the
// next hop's input. An exact-out amount is solved backward: each hop's inverse
// depends only on that hop's own balances, so walking last-to-first turns the
// route into independent single-hop inversions.
func (k *Keeper) routeSwaps(ctx context.Context, first types.Swap, route []types.Step, amount types.SwapAmount) (types.SwapAmount, []poolUpdate, error) {
	if err := amount.Validate(); err != nil {
		return types.SwapAmount{}, nil, err
	}

	hops := types.RouteHops(first, route)
	stage := k.newRouteStage(ctx)

	switch {
	case amount.IsIn():
		current := *amount.In
		for _, hop := range hops {
			pool, err := stage.pool(hop.PoolID)
			if err != nil {
				return types.SwapAmount{}, nil, err
			}
			payout, err := pool.Swap(hop.DenomIn, hop.DenomOut, types.NewSwapAmountIn(current))
			if err != nil {
				return types.SwapAmount{}, nil, err
			}
			if current, err = payout.AsOut(); err != nil {
				return types.SwapAmount{}, nil, err
			}
		}
		return types.NewSwapAmountOut(current), stage.updates(), nil

	default:
		current := *amount.Out
		for i := len(hops) - 1; i >= 0; i-- {
			hop := hops[i]
			pool, err := stage.pool(hop.PoolID)
			if err != nil {
				return types.SwapAmount{}, nil, err
			}
			payin, err := pool.Swap(hop.DenomIn, hop.DenomOut, types.NewSwapAmountOut(current))
			if err != nil {
				return types.SwapAmount{}, nil, err
			}
			if current, err = payin.AsIn(); err != nil {
				return types.SwapAmount{}, nil, err
			}
		}
		return types.NewSwapAmountIn(current), stage.updates(), nil
	}
}

// commitUpdates persists every staged pool snapshot. Callers only reach this
// after the slippage check has passed; a failed swap persists nothing.
func (k *Keeper) commitUpdates(ctx context.Context, updates []poolUpdate) error {
	for _, update := range updates {
		if err := k.SetPool(ctx, update.poolID, update.pool); err != nil {
			return err
		}
	}
	return nil
}
