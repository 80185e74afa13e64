package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// QueryServer defines the read-only query surface of the venue
type QueryServer interface {
	PoolState(ctx context.Context, req *QueryPoolStateRequest) (*PoolStateResponse, error)
	SpotPrice(ctx context.Context, req *QuerySpotPriceRequest) (*SpotPriceResponse, error)
	EstimateSwap(ctx context.Context, req *QueryEstimateSwapRequest) (*SwapResponse, error)
}

// QueryPoolStateRequest asks for the assets and LP share supply of one pool
type QueryPoolStateRequest struct {
	PoolID uint64 `json:"id"`
}

// PoolStateResponse lists the tokens traded on a pool with current liquidity,
// plus the LP share coin.
type PoolStateResponse struct {
	Assets []sdk.Coin `json:"assets"`
	Shares sdk.Coin   `json:"shares"`
}

// HasDenom reports whether the pool trades the given denom
func (r PoolStateResponse) HasDenom(denom string) bool {
	for _, asset := range r.Assets {
		if asset.Denom == denom {
			return true
		}
	}
	return false
}

// LPDenom returns the denom of the pool's LP share coin
func (r PoolStateResponse) LPDenom() string {
	return r.Shares.Denom
}

// SharesValue returns the pro-rata pool assets represented by numShares LP shares
func (r PoolStateResponse) SharesValue(numShares math.Int) []sdk.Coin {
	value := make([]sdk.Coin, 0, len(r.Assets))
	for _, asset := range r.Assets {
		value = append(value, sdk.Coin{
			Denom:  asset.Denom,
			Amount: asset.Amount.Mul(numShares).Quo(r.Shares.Amount),
		})
	}
	return value
}

// QuerySpotPriceRequest asks for the current spot price swapping In for Out on
// one pool. Easily manipulated by sandwiching; not an oracle.
type QuerySpotPriceRequest struct {
	Swap        Swap `json:"swap"`
	WithSwapFee bool `json:"with_swap_fee"`
}

// SpotPriceResponse is how many output units one input unit buys
type SpotPriceResponse struct {
	Price math.LegacyDec `json:"price"`
}

// QueryEstimateSwapRequest prices a route without mutating any pool
type QueryEstimateSwapRequest struct {
	Sender string     `json:"sender"`
	First  Swap       `json:"first"`
	Route  []Step     `json:"route"`
	Amount SwapAmount `json:"amount"`
}

// SwapResponse carries the side opposite the caller's exact side: Out for an
// In query, In for an Out query.
type SwapResponse struct {
	Amount SwapAmount `json:"amount"`
}
