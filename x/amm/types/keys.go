package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix = []byte{0x01} // prefix for pool store
	PoolCountKey  = []byte{0x02} // key for the next-pool-id counter
	ParamsKey     = []byte{0x03} // key for module params
)

// PoolKey returns the store key for a pool
func PoolKey(poolID uint64) []byte {
	return append(PoolKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// ShareDenom returns the LP share denom for a pool
func ShareDenom(poolID uint64) string {
	return fmt.Sprintf("amm/pool/%d", poolID)
}
