package keeper

import (
	"context"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

// CreatePool handles MsgCreatePool
func (k *Keeper) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	poolID, _, err := k.createPool(ctx, msg.Creator, msg.CoinA, msg.CoinB)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolID: poolID}, nil
}

// Swap handles MsgSwap: it routes the hop chain over staged pool copies,
// enforces the slippage bound, and only then persists every touched pool and
// requests settlement from the host ledger. A rejected swap leaves all stored
// state untouched.
func (k *Keeper) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	result, updates, err := k.routeSwaps(ctx, msg.First, msg.Route, msg.Amount.DiscardLimit())
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(statusError).Inc()
		return nil, err
	}

	if err := msg.Amount.CheckLimit(result); err != nil {
		k.metrics.SwapsTotal.WithLabelValues(statusRejected).Inc()
		k.metrics.SlippageRejections.Inc()
		k.logger.Info(types.EventTypeSwapRejected,
			types.AttributeKeySender, msg.Sender,
			types.AttributeKeyPoolID, msg.First.PoolID,
			"err", err,
		)
		return nil, err
	}

	if err := k.commitUpdates(ctx, updates); err != nil {
		k.metrics.SwapsTotal.WithLabelValues(statusError).Inc()
		return nil, err
	}

	payIn, getOut, err := settleAmounts(msg.Amount, result)
	if err != nil {
		return nil, err
	}
	denomIn, denomOut := msg.First.DenomIn, msg.DenomOut()

	// the venue holds no balances of its own: the input leg is burned from the
	// trader and the output leg minted to it by the host ledger
	if err := k.bank.BurnCoin(ctx, msg.Sender, sdk.Coin{Denom: denomIn, Amount: payIn}); err != nil {
		return nil, err
	}
	if err := k.bank.MintCoin(ctx, msg.Sender, sdk.Coin{Denom: denomOut, Amount: getOut}); err != nil {
		return nil, err
	}

	k.metrics.SwapsTotal.WithLabelValues(statusOK).Inc()
	volume, _ := new(big.Float).SetInt(payIn.BigInt()).Float64()
	k.metrics.SwapVolume.WithLabelValues(denomIn).Add(volume)
	k.logger.Info(types.EventTypeSwap,
		types.AttributeKeySender, msg.Sender,
		types.AttributeKeyDenomIn, denomIn,
		types.AttributeKeyDenomOut, denomOut,
		types.AttributeKeyAmountIn, payIn.String(),
		types.AttributeKeyAmountOut, getOut.String(),
		types.AttributeKeyHops, len(msg.Route)+1,
	)

	return &types.MsgSwapResponse{Amount: result}, nil
}

// settleAmounts resolves the traded input and output legs from the caller's
// request and the routing result. The exact side comes from the request; the
// opposite side is the routed result.
func settleAmounts(amount types.SwapAmountWithLimit, result types.SwapAmount) (payIn, getOut math.Int, err error) {
	if amount.ExactIn != nil {
		getOut, err = result.AsOut()
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		return amount.ExactIn.Input, getOut, nil
	}
	payIn, err = result.AsIn()
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return payIn, amount.ExactOut.Output, nil
}
