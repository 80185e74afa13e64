package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the narrow slice of the host ledger the venue settles through
// after a committed swap: the input leg is burned from the trader's balance and
// the output leg is minted to it. The venue itself carries no token balances.
type BankKeeper interface {
	BurnCoin(ctx context.Context, from string, coin sdk.Coin) error
	MintCoin(ctx context.Context, to string, coin sdk.Coin) error
}
