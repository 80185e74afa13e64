package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/bindings/x/amm/keeper"
	"github.com/osmosis-labs/bindings/x/amm/types"
)

// mockBank records the settlement calls the venue issues to the host ledger
type mockBank struct {
	burns []sdk.Coin
	mints []sdk.Coin
}

func (m *mockBank) BurnCoin(_ context.Context, _ string, coin sdk.Coin) error {
	m.burns = append(m.burns, coin)
	return nil
}

func (m *mockBank) MintCoin(_ context.Context, _ string, coin sdk.Coin) error {
	m.mints = append(m.mints, coin)
	return nil
}

func newTestKeeper(t *testing.T) (*keeper.Keeper, *mockBank, context.Context) {
	t.Helper()
	bank := &mockBank{}
	k := keeper.NewKeeper(dbm.NewMemDB(), bank, log.NewNopLogger())
	return k, bank, context.Background()
}

func coin(amount int64, denom string) sdk.Coin {
	return sdk.Coin{Denom: denom, Amount: math.NewInt(amount)}
}

// setPool stores a pool under an explicit id, the way venue tests seed state
func setPool(t *testing.T, k *keeper.Keeper, ctx context.Context, poolID uint64, pool types.Pool) {
	t.Helper()
	require.NoError(t, k.SetPool(ctx, poolID, &pool))
}

// requirePoolAssets asserts the stored balances of one pool
func requirePoolAssets(t *testing.T, k *keeper.Keeper, ctx context.Context, poolID uint64, assets ...sdk.Coin) {
	t.Helper()
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, assets, pool.Assets)
}
