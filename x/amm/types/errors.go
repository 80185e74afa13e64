package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrAssetNotInPool        = errors.Register(ModuleName, 2, "asset not in pool")
	ErrPriceTooLow           = errors.Register(ModuleName, 3, "price under minimum requested, aborting swap")
	ErrPoolNotFound          = errors.Register(ModuleName, 4, "pool not found")
	ErrPoolExists            = errors.Register(ModuleName, 5, "pool already exists")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 6, "insufficient liquidity in pool")
	ErrInvalidAmount         = errors.Register(ModuleName, 7, "invalid amount")
	ErrSwapSideMismatch      = errors.Register(ModuleName, 8, "swap amount is the wrong side")
	ErrInvalidRoute          = errors.Register(ModuleName, 9, "invalid swap route")
	ErrInvalidDenom          = errors.Register(ModuleName, 10, "invalid token denomination")
	ErrUnimplemented         = errors.Register(ModuleName, 11, "not implemented")
	ErrInvalidAddress        = errors.Register(ModuleName, 12, "invalid address")
)
