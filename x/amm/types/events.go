package types

// Structured-log event names and attribute keys for the AMM module
const (
	EventTypePoolCreated  = "pool_created"
	EventTypeSwap         = "swap"
	EventTypeSwapRejected = "swap_rejected"

	AttributeKeyPoolID    = "pool_id"
	AttributeKeySender    = "sender"
	AttributeKeyDenomIn   = "denom_in"
	AttributeKeyDenomOut  = "denom_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyHops      = "hops"
	AttributeKeyShares    = "shares"
)
