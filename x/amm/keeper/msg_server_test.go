package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/bindings/x/amm/keeper"
	"github.com/osmosis-labs/bindings/x/amm/types"
)

// seeds the two-pool route shared by the swap tests:
// pool 1 osmo/atom, pool 2 atom/btc
func setupRoutePools(t *testing.T) (*keeper.Keeper, *mockBank, context.Context) {
	t.Helper()
	k, bank, ctx := newTestKeeper(t)
	setPool(t, k, ctx, 1, types.NewPool(coin(6_000_000, "osmo"), coin(3_000_000, "atom")))
	setPool(t, k, ctx, 2, types.NewPool(coin(2_000_000, "atom"), coin(1_000_000, "btc")))
	return k, bank, ctx
}

func routeMsg(amount types.SwapAmountWithLimit) *types.MsgSwap {
	return types.NewMsgSwap(
		"trader",
		types.NewSwap(1, "osmo", "atom"),
		[]types.Step{types.NewStep(2, "btc")},
		amount,
	)
}

// TestSwapSinglePoolExactOut replays the canonical single-pool trade: buying
// the full 1.5M osmo out of a 6M/1.5M pool costs 501505 atom.
func TestSwapSinglePoolExactOut(t *testing.T) {
	k, bank, ctx := newTestKeeper(t)
	setPool(t, k, ctx, 43, types.NewPool(coin(6_000_000, "osmo"), coin(1_500_000, "atom")))

	// bound too tight: rejected and nothing stored
	msg := types.SimpleSwap("trader", 43, "atom", "osmo",
		types.NewExactOut(math.NewInt(1_500_000), math.NewInt(400_000)))
	_, err := k.Swap(ctx, msg)
	require.ErrorIs(t, err, types.ErrPriceTooLow)
	requirePoolAssets(t, k, ctx, 43, coin(6_000_000, "osmo"), coin(1_500_000, "atom"))
	require.Empty(t, bank.burns)

	// generous bound: committed
	msg = types.SimpleSwap("trader", 43, "atom", "osmo",
		types.NewExactOut(math.NewInt(1_500_000), math.NewInt(600_000)))
	resp, err := k.Swap(ctx, msg)
	require.NoError(t, err)

	in, err := resp.Amount.AsIn()
	require.NoError(t, err)
	require.Equal(t, math.NewInt(501_505), in)

	requirePoolAssets(t, k, ctx, 43, coin(4_500_000, "osmo"), coin(2_001_505, "atom"))
	require.Equal(t, []sdk.Coin{coin(501_505, "atom")}, bank.burns)
	require.Equal(t, []sdk.Coin{coin(1_500_000, "osmo")}, bank.mints)
}

// TestSwapRouteExactIn sends 4000 osmo through both pools and checks the
// chained single-hop formulas land on 993 btc.
func TestSwapRouteExactIn(t *testing.T) {
	k, bank, ctx := setupRoutePools(t)

	resp, err := k.Swap(ctx, routeMsg(types.NewExactIn(math.NewInt(4000), math.NewInt(900))))
	require.NoError(t, err)

	out, err := resp.Amount.AsOut()
	require.NoError(t, err)
	require.Equal(t, math.NewInt(993), out)

	requirePoolAssets(t, k, ctx, 1, coin(6_004_000, "osmo"), coin(2_998_007, "atom"))
	requirePoolAssets(t, k, ctx, 2, coin(2_001_993, "atom"), coin(999_007, "btc"))

	require.Equal(t, []sdk.Coin{coin(4000, "osmo")}, bank.burns)
	require.Equal(t, []sdk.Coin{coin(993, "btc")}, bank.mints)
}

// TestSwapRouteExactOut solves the route backward for 1000 btc: pool 2 needs
// 2009 atom, which costs 4033 osmo on pool 1.
func TestSwapRouteExactOut(t *testing.T) {
	k, bank, ctx := setupRoutePools(t)

	resp, err := k.Swap(ctx, routeMsg(types.NewExactOut(math.NewInt(1000), math.NewInt(5000))))
	require.NoError(t, err)

	in, err := resp.Amount.AsIn()
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4033), in)

	requirePoolAssets(t, k, ctx, 1, coin(6_004_033, "osmo"), coin(2_997_991, "atom"))
	requirePoolAssets(t, k, ctx, 2, coin(2_002_009, "atom"), coin(999_000, "btc"))

	require.Equal(t, []sdk.Coin{coin(4033, "osmo")}, bank.burns)
	require.Equal(t, []sdk.Coin{coin(1000, "btc")}, bank.mints)
}

// TestSwapRouteMaxInputExceeded: the true required input (4033) exceeds the
// caller's bound, so the command fails and neither pool changes.
func TestSwapRouteMaxInputExceeded(t *testing.T) {
	k, bank, ctx := setupRoutePools(t)

	_, err := k.Swap(ctx, routeMsg(types.NewExactOut(math.NewInt(1000), math.NewInt(4000))))
	require.ErrorIs(t, err, types.ErrPriceTooLow)

	requirePoolAssets(t, k, ctx, 1, coin(6_000_000, "osmo"), coin(3_000_000, "atom"))
	requirePoolAssets(t, k, ctx, 2, coin(2_000_000, "atom"), coin(1_000_000, "btc"))
	require.Empty(t, bank.burns)
	require.Empty(t, bank.mints)
}

func TestSwapRouteMinOutputNotMet(t *testing.T) {
	k, bank, ctx := setupRoutePools(t)

	_, err := k.Swap(ctx, routeMsg(types.NewExactIn(math.NewInt(4000), math.NewInt(1000))))
	require.ErrorIs(t, err, types.ErrPriceTooLow)

	requirePoolAssets(t, k, ctx, 1, coin(6_000_000, "osmo"), coin(3_000_000, "atom"))
	requirePoolAssets(t, k, ctx, 2, coin(2_000_000, "atom"), coin(1_000_000, "btc"))
	require.Empty(t, bank.burns)
	require.Empty(t, bank.mints)
}

// TestSwapRouteWrongDenom: the step asks pool 2 for a denom it does not trade
func TestSwapRouteWrongDenom(t *testing.T) {
	k, _, ctx := newTestKeeper(t)
	setPool(t, k, ctx, 1, types.NewPool(coin(6_000_000, "osmo"), coin(3_000_000, "atom")))
	setPool(t, k, ctx, 2, types.NewPool(coin(2_000_000, "atom"), coin(1_000_000, "eth")))

	_, err := k.Swap(ctx, routeMsg(types.NewExactOut(math.NewInt(1000), math.NewInt(4000))))
	require.ErrorIs(t, err, types.ErrAssetNotInPool)

	requirePoolAssets(t, k, ctx, 1, coin(6_000_000, "osmo"), coin(3_000_000, "atom"))
	requirePoolAssets(t, k, ctx, 2, coin(2_000_000, "atom"), coin(1_000_000, "eth"))
}

func TestSwapPoolNotFound(t *testing.T) {
	k, _, ctx := newTestKeeper(t)

	msg := types.SimpleSwap("trader", 9, "osmo", "atom",
		types.NewExactIn(math.NewInt(1000), math.NewInt(1)))
	_, err := k.Swap(ctx, msg)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestSwapRevisitsPool routes back through the first pool; the second visit
// must see the staged balances from the first hop, not stored state.
func TestSwapRevisitsPool(t *testing.T) {
	k, _, ctx := newTestKeeper(t)
	setPool(t, k, ctx, 1, types.NewPool(coin(6_000_000, "osmo"), coin(3_000_000, "atom")))
	setPool(t, k, ctx, 2, types.NewPool(coin(2_000_000, "atom"), coin(1_000_000, "btc")))

	msg := types.NewMsgSwap(
		"trader",
		types.NewSwap(1, "osmo", "atom"),
		[]types.Step{types.NewStep(2, "btc"), types.NewStep(2, "atom"), types.NewStep(1, "osmo")},
		types.NewExactIn(math.NewInt(100_000), math.NewInt(1)),
	)
	resp, err := k.Swap(ctx, msg)
	require.NoError(t, err)

	out, err := resp.Amount.AsOut()
	require.NoError(t, err)
	// fees on four hops eat well into the round trip
	require.True(t, out.IsPositive())
	require.True(t, out.LT(math.NewInt(100_000)))

	// pool 1 absorbed both visits: deposits on the first hop and the payout
	// debit on the last
	pool1, err := k.GetPool(ctx, 1)
	require.NoError(t, err)
	osmo, _ := pool1.GetAmount("osmo")
	require.Equal(t, math.NewInt(6_000_000).Add(math.NewInt(100_000)).Sub(out), osmo)
}

func TestSwapValidateBasicRejected(t *testing.T) {
	k, _, ctx := setupRoutePools(t)

	msg := routeMsg(types.NewExactIn(math.NewInt(4000), math.NewInt(900)))
	msg.Sender = ""
	_, err := k.Swap(ctx, msg)
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	msg = routeMsg(types.SwapAmountWithLimit{})
	_, err = k.Swap(ctx, msg)
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
