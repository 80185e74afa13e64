package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer defines the state-mutating command surface of the venue
type MsgServer interface {
	CreatePool(ctx context.Context, msg *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Swap(ctx context.Context, msg *MsgSwap) (*MsgSwapResponse, error)
}

// MsgCreatePool sets up a new two-asset pool seeded with the given coins
type MsgCreatePool struct {
	Creator string   `json:"creator"`
	CoinA   sdk.Coin `json:"coin_a"`
	CoinB   sdk.Coin `json:"coin_b"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator string, coinA, coinB sdk.Coin) *MsgCreatePool {
	return &MsgCreatePool{
		Creator: creator,
		CoinA:   coinA,
		CoinB:   coinB,
	}
}

// ValidateBasic performs stateless validation of the message
func (msg MsgCreatePool) ValidateBasic() error {
	if msg.Creator == "" {
		return ErrInvalidAddress.Wrap("creator cannot be empty")
	}
	for _, coin := range []sdk.Coin{msg.CoinA, msg.CoinB} {
		if err := sdk.ValidateDenom(coin.Denom); err != nil {
			return ErrInvalidDenom.Wrapf("%s: %v", coin.Denom, err)
		}
		if coin.Amount.IsNil() || !coin.Amount.IsPositive() {
			return ErrInvalidAmount.Wrapf("seed balance of %s must be positive", coin.Denom)
		}
	}
	if msg.CoinA.Denom == msg.CoinB.Denom {
		return ErrInvalidDenom.Wrap("pool assets must differ")
	}
	return nil
}

// MsgCreatePoolResponse reports the id assigned to the new pool
type MsgCreatePoolResponse struct {
	PoolID uint64 `json:"pool_id"`
}

// MsgSwap executes a swap over one or more pools: the first hop, continuation
// steps, and the exact amount with its slippage bound.
type MsgSwap struct {
	Sender string              `json:"sender"`
	First  Swap                `json:"first"`
	Route  []Step              `json:"route"`
	Amount SwapAmountWithLimit `json:"amount"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(sender string, first Swap, route []Step, amount SwapAmountWithLimit) *MsgSwap {
	return &MsgSwap{
		Sender: sender,
		First:  first,
		Route:  route,
		Amount: amount,
	}
}

// SimpleSwap builds a single-pool MsgSwap
func SimpleSwap(sender string, poolID uint64, denomIn, denomOut string, amount SwapAmountWithLimit) *MsgSwap {
	return NewMsgSwap(sender, NewSwap(poolID, denomIn, denomOut), nil, amount)
}

// DenomOut returns the output denom of the route's final hop
func (msg MsgSwap) DenomOut() string {
	if len(msg.Route) == 0 {
		return msg.First.DenomOut
	}
	return msg.Route[len(msg.Route)-1].DenomOut
}

// ValidateBasic performs stateless validation of the message
func (msg MsgSwap) ValidateBasic() error {
	if msg.Sender == "" {
		return ErrInvalidAddress.Wrap("sender cannot be empty")
	}
	if err := sdk.ValidateDenom(msg.First.DenomIn); err != nil {
		return ErrInvalidDenom.Wrapf("denom in: %v", err)
	}
	if err := sdk.ValidateDenom(msg.First.DenomOut); err != nil {
		return ErrInvalidDenom.Wrapf("denom out: %v", err)
	}
	if msg.First.DenomIn == msg.First.DenomOut {
		return ErrInvalidRoute.Wrap("cannot swap a denom for itself")
	}
	prev := msg.First.DenomOut
	for i, step := range msg.Route {
		if err := sdk.ValidateDenom(step.DenomOut); err != nil {
			return ErrInvalidDenom.Wrapf("step %d denom out: %v", i, err)
		}
		if step.DenomOut == prev {
			return ErrInvalidRoute.Wrapf("step %d swaps %s for itself", i, prev)
		}
		prev = step.DenomOut
	}
	return msg.Amount.Validate()
}

// MsgSwapResponse carries the side opposite the caller's exact side
type MsgSwapResponse struct {
	Amount SwapAmount `json:"amount"`
}
