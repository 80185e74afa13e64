package types

import (
	"cosmossdk.io/math"
)

// Params defines venue-wide parameters applied to newly created pools
type Params struct {
	// SwapFee is the fee rate charged on the input leg of every swap
	SwapFee math.LegacyDec `json:"swap_fee"`
	// MinLiquidity is the minimum initial share amount for a new pool
	MinLiquidity math.Int `json:"min_liquidity"`
}

// DefaultSwapFee returns the default 0.3% swap fee rate
func DefaultSwapFee() math.LegacyDec {
	return math.LegacyNewDecWithPrec(3, 3)
}

// DefaultParams returns the default venue parameters
func DefaultParams() Params {
	return Params{
		SwapFee:      DefaultSwapFee(),
		MinLiquidity: math.NewInt(1),
	}
}

// Validate checks parameter invariants
func (p Params) Validate() error {
	if p.SwapFee.IsNil() || p.SwapFee.IsNegative() || p.SwapFee.GTE(math.LegacyOneDec()) {
		return ErrInvalidAmount.Wrap("swap fee must be in [0, 1)")
	}
	if p.MinLiquidity.IsNil() || p.MinLiquidity.IsNegative() {
		return ErrInvalidAmount.Wrap("min liquidity must be non-negative")
	}
	return nil
}
