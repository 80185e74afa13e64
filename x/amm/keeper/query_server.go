package keeper

import (
	"context"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

// PoolState returns the assets and LP share coin of one pool
func (k *Keeper) PoolState(ctx context.Context, req *types.QueryPoolStateRequest) (*types.PoolStateResponse, error) {
	pool, err := k.GetPool(ctx, req.PoolID)
	if err != nil {
		return nil, err
	}
	state := pool.IntoPoolState(req.PoolID)
	return &state, nil
}

// SpotPrice returns the current marginal price swapping In for Out on one pool
func (k *Keeper) SpotPrice(ctx context.Context, req *types.QuerySpotPriceRequest) (*types.SpotPriceResponse, error) {
	pool, err := k.GetPool(ctx, req.Swap.PoolID)
	if err != nil {
		return nil, err
	}
	price, err := pool.SpotPrice(req.Swap.DenomIn, req.Swap.DenomOut, req.WithSwapFee)
	if err != nil {
		return nil, err
	}
	return &types.SpotPriceResponse{Price: price}, nil
}

// EstimateSwap prices a route with the same math as the swap command, but all
// staged pool mutations are discarded and no slippage bound applies.
func (k *Keeper) EstimateSwap(ctx context.Context, req *types.QueryEstimateSwapRequest) (*types.SwapResponse, error) {
	amount, _, err := k.routeSwaps(ctx, req.First, req.Route, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.SwapResponse{Amount: amount}, nil
}
