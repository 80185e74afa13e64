package types

import (
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is a single constant-product liquidity venue. Assets keep their insertion
// order; denoms are unique within a pool. Shares are fixed at creation (swaps do
// not mint or burn LP shares).
type Pool struct {
	Assets []sdk.Coin     `json:"assets"`
	Shares math.Int       `json:"shares"`
	Fee    math.LegacyDec `json:"fee"`
}

// NewPool makes an equal-weighted pool over two seed coins with the default
// 0.3% swap fee. Initial shares are the integer square root of the product of
// the seed balances (geometric mean).
func NewPool(a, b sdk.Coin) Pool {
	return NewPoolWithFee(a, b, DefaultSwapFee())
}

// NewPoolWithFee makes a pool with an explicit swap fee rate in [0, 1).
func NewPoolWithFee(a, b sdk.Coin, fee math.LegacyDec) Pool {
	product := a.Amount.Mul(b.Amount)
	shares := math.NewIntFromBigInt(new(big.Int).Sqrt(product.BigInt()))
	return Pool{
		Assets: []sdk.Coin{a, b},
		Shares: shares,
		Fee:    fee,
	}
}

// Validate checks structural pool invariants
func (p Pool) Validate() error {
	if len(p.Assets) < 2 {
		return ErrInvalidAmount.Wrap("pool must hold at least two assets")
	}
	seen := make(map[string]struct{}, len(p.Assets))
	for _, asset := range p.Assets {
		if err := sdk.ValidateDenom(asset.Denom); err != nil {
			return ErrInvalidDenom.Wrapf("%s: %v", asset.Denom, err)
		}
		if _, ok := seen[asset.Denom]; ok {
			return ErrInvalidDenom.Wrapf("duplicate denom %s", asset.Denom)
		}
		seen[asset.Denom] = struct{}{}
		if asset.Amount.IsNil() || asset.Amount.IsNegative() {
			return ErrInvalidAmount.Wrapf("balance of %s must be non-negative", asset.Denom)
		}
	}
	if p.Shares.IsNil() || p.Shares.IsNegative() {
		return ErrInvalidAmount.Wrap("shares must be non-negative")
	}
	if p.Fee.IsNil() || p.Fee.IsNegative() || p.Fee.GTE(math.LegacyOneDec()) {
		return ErrInvalidAmount.Wrap("fee must be in [0, 1)")
	}
	return nil
}

// HasDenom reports whether the pool trades the given denom
func (p Pool) HasDenom(denom string) bool {
	for _, asset := range p.Assets {
		if asset.Denom == denom {
			return true
		}
	}
	return false
}

// GetAmount returns the current balance of denom, and whether it is in the pool
func (p Pool) GetAmount(denom string) (math.Int, bool) {
	for _, asset := range p.Assets {
		if asset.Denom == denom {
			return asset.Amount, true
		}
	}
	return math.Int{}, false
}

// SetAmount replaces the balance of denom. Fails with ErrAssetNotInPool if the
// denom is not traded by this pool.
func (p *Pool) SetAmount(denom string, amount math.Int) error {
	for i := range p.Assets {
		if p.Assets[i].Denom == denom {
			p.Assets[i].Amount = amount
			return nil
		}
	}
	return ErrAssetNotInPool.Wrapf("denom %s", denom)
}

// balances resolves both legs of a swap, failing if either denom is absent
func (p Pool) balances(denomIn, denomOut string) (balIn, balOut math.Int, err error) {
	balIn, okIn := p.GetAmount(denomIn)
	balOut, okOut := p.GetAmount(denomOut)
	if !okIn || !okOut {
		return math.Int{}, math.Int{}, ErrAssetNotInPool.Wrapf("pair %s/%s", denomIn, denomOut)
	}
	return balIn, balOut, nil
}

// SpotPrice returns the marginal price of denomOut in terms of denomIn:
// balOut * (1-fee if withSwapFee) / balIn.
func (p Pool) SpotPrice(denomIn, denomOut string, withSwapFee bool) (math.LegacyDec, error) {
	balIn, balOut, err := p.balances(denomIn, denomOut)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if balIn.IsZero() {
		return math.LegacyDec{}, ErrInsufficientLiquidity.Wrapf("no %s liquidity", denomIn)
	}
	mult := math.LegacyOneDec()
	if withSwapFee {
		mult = mult.Sub(p.Fee)
	}
	numer := mult.MulInt(balOut).TruncateInt()
	return math.LegacyNewDecFromInt(numer).QuoInt(balIn), nil
}

// Swap trades denomIn for denomOut on the constant-product curve with the fee
// charged on the input leg, and returns the amount of the opposite side. Both
// asset balances are updated in place; the mutation is local to this Pool value
// until the caller persists it.
func (p *Pool) Swap(denomIn, denomOut string, amount SwapAmount) (SwapAmount, error) {
	balIn, balOut, err := p.balances(denomIn, denomOut)
	if err != nil {
		return SwapAmount{}, err
	}

	var finalIn, finalOut math.Int
	var result SwapAmount
	switch {
	case amount.IsIn():
		input := *amount.In
		inputMinusFee := math.LegacyOneDec().Sub(p.Fee).MulInt(input).TruncateInt()
		denominator := balIn.Add(inputMinusFee)
		if !denominator.IsPositive() {
			return SwapAmount{}, ErrInsufficientLiquidity.Wrapf("no %s liquidity", denomIn)
		}
		// x*y = k, with the fee-discounted input as the effective deposit
		finalOut = balIn.Mul(balOut).Quo(denominator)
		result = NewSwapAmountOut(balOut.Sub(finalOut))
		// the full input, fee included, stays in the pool
		finalIn = balIn.Add(input)

	case amount.IsOut():
		output := *amount.Out
		if output.GTE(balOut) {
			return SwapAmount{}, ErrInsufficientLiquidity.Wrapf(
				"output %s exceeds %s reserve %s", output, denomOut, balOut)
		}
		inWithoutFee := balIn.Mul(balOut).Quo(balOut.Sub(output))
		// gross the fee onto the required input; integer division plus one so the
		// pool never under-collects
		mult := math.LegacyOneDec().Sub(p.Fee)
		payInclFee := math.LegacyNewDecFromInt(inWithoutFee.Sub(balIn)).
			QuoTruncate(mult).TruncateInt().AddRaw(1)
		result = NewSwapAmountIn(payInclFee)
		finalIn = balIn.Add(payInclFee)
		finalOut = balOut.Sub(output)

	default:
		return SwapAmount{}, ErrInvalidAmount.Wrap("swap amount must set one of in/out")
	}

	if err := p.SetAmount(denomIn, finalIn); err != nil {
		return SwapAmount{}, err
	}
	if err := p.SetAmount(denomOut, finalOut); err != nil {
		return SwapAmount{}, err
	}
	return result, nil
}

// SwapWithLimit performs a single-hop swap and enforces the caller's slippage
// bound against the result.
func (p *Pool) SwapWithLimit(denomIn, denomOut string, amount SwapAmountWithLimit) (SwapAmount, error) {
	if err := amount.Validate(); err != nil {
		return SwapAmount{}, err
	}
	result, err := p.Swap(denomIn, denomOut, amount.DiscardLimit())
	if err != nil {
		return SwapAmount{}, err
	}
	if err := amount.CheckLimit(result); err != nil {
		return SwapAmount{}, err
	}
	return result, nil
}

// IntoPoolState projects the pool into its query response form, including the
// LP share coin for the given pool id.
func (p Pool) IntoPoolState(poolID uint64) PoolStateResponse {
	return PoolStateResponse{
		Assets: p.Assets,
		Shares: sdk.Coin{Denom: ShareDenom(poolID), Amount: p.Shares},
	}
}
