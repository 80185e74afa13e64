package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

// GetParams returns the venue parameters, falling back to defaults when none
// have been stored yet.
func (k *Keeper) GetParams(ctx context.Context) (types.Params, error) {
	bz, err := k.db.Get(types.ParamsKey)
	if err != nil {
		return types.Params{}, fmt.Errorf("get params: %w", err)
	}
	if bz == nil {
		return types.DefaultParams(), nil
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("unmarshal params: %w", err)
	}
	return params, nil
}

// SetParams stores the venue parameters
func (k *Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	if err := k.db.Set(types.ParamsKey, bz); err != nil {
		return fmt.Errorf("set params: %w", err)
	}
	return nil
}
