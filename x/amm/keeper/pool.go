package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k *Keeper) GetNextPoolID(ctx context.Context) (uint64, error) {
	bz, err := k.db.Get(types.PoolCountKey)
	if err != nil {
		return 0, fmt.Errorf("get pool counter: %w", err)
	}

	var poolID uint64 = 1
	if bz != nil {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	if err := k.db.Set(types.PoolCountKey, nextBz); err != nil {
		return 0, fmt.Errorf("set pool counter: %w", err)
	}
	return poolID, nil
}

// SetNextPoolID sets the next-pool-id counter
func (k *Keeper) SetNextPoolID(ctx context.Context, poolID uint64) error {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	if err := k.db.Set(types.PoolCountKey, bz); err != nil {
		return fmt.Errorf("set pool counter: %w", err)
	}
	return nil
}

// GetPool retrieves a pool by its numeric id. Returns ErrPoolNotFound if the
// pool does not exist.
func (k *Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	bz, err := k.db.Get(types.PoolKey(poolID))
	if err != nil {
		return nil, fmt.Errorf("get pool %d: %w", poolID, err)
	}
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// HasPool reports whether a pool with the given id exists
func (k *Keeper) HasPool(ctx context.Context, poolID uint64) (bool, error) {
	ok, err := k.db.Has(types.PoolKey(poolID))
	if err != nil {
		return false, fmt.Errorf("has pool %d: %w", poolID, err)
	}
	return ok, nil
}

// SetPool saves a pool under the given id
func (k *Keeper) SetPool(ctx context.Context, poolID uint64, pool *types.Pool) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("marshal pool %d: %w", poolID, err)
	}
	if err := k.db.Set(types.PoolKey(poolID), bz); err != nil {
		return fmt.Errorf("set pool %d: %w", poolID, err)
	}
	return nil
}

// createPool sets up a new pool seeded with two coins, assigning it the next
// free id. The fee comes from the venue parameters and the LP share amount is
// the integer square root of the product of the seed balances.
func (k *Keeper) createPool(ctx context.Context, creator string, coinA, coinB sdk.Coin) (uint64, *types.Pool, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, nil, err
	}

	pool := types.NewPoolWithFee(coinA, coinB, params.SwapFee)
	if err := pool.Validate(); err != nil {
		return 0, nil, err
	}
	if pool.Shares.LT(params.MinLiquidity) {
		return 0, nil, types.ErrInsufficientLiquidity.Wrapf(
			"initial shares %s below minimum %s", pool.Shares, params.MinLiquidity)
	}

	poolID, err := k.GetNextPoolID(ctx)
	if err != nil {
		return 0, nil, err
	}
	if err := k.SetPool(ctx, poolID, &pool); err != nil {
		return 0, nil, err
	}

	k.metrics.PoolsTotal.Inc()
	k.logger.Info(types.EventTypePoolCreated,
		types.AttributeKeyPoolID, poolID,
		types.AttributeKeySender, creator,
		types.AttributeKeyShares, pool.Shares.String(),
	)
	return poolID, &pool, nil
}

// IteratePools iterates over all stored pools in ascending id order
func (k *Keeper) IteratePools(ctx context.Context, cb func(poolID uint64, pool types.Pool) (stop bool)) error {
	start, end := prefixRange(types.PoolKeyPrefix)
	iterator, err := k.db.Iterator(start, end)
	if err != nil {
		return fmt.Errorf("iterate pools: %w", err)
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		poolID := binary.BigEndian.Uint64(iterator.Key()[len(types.PoolKeyPrefix):])
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("unmarshal pool %d: %w", poolID, err)
		}
		if cb(poolID, pool) {
			break
		}
	}
	return iterator.Error()
}

// prefixRange returns the [start, end) key range covering every key under prefix
func prefixRange(prefix []byte) ([]byte, []byte) {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}
