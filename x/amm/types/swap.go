package types

import (
	"cosmossdk.io/math"
)

// Swap is a single fully-specified hop: trade DenomIn for DenomOut on pool PoolID.
type Swap struct {
	PoolID   uint64 `json:"pool_id"`
	DenomIn  string `json:"denom_in"`
	DenomOut string `json:"denom_out"`
}

// NewSwap creates a new Swap instance
func NewSwap(poolID uint64, denomIn, denomOut string) Swap {
	return Swap{
		PoolID:   poolID,
		DenomIn:  denomIn,
		DenomOut: denomOut,
	}
}

// Step is a continuation hop. Its input denom is implied by the previous hop's
// output denom.
type Step struct {
	PoolID   uint64 `json:"pool_id"`
	DenomOut string `json:"denom_out"`
}

// NewStep creates a new Step instance
func NewStep(poolID uint64, denomOut string) Step {
	return Step{
		PoolID:   poolID,
		DenomOut: denomOut,
	}
}

// RouteHops expands a first swap plus route steps into the ordered list of
// fully-specified hops: each step's input denom is the previous hop's output denom.
func RouteHops(first Swap, route []Step) []Swap {
	hops := make([]Swap, 0, len(route)+1)
	hops = append(hops, first)
	denomIn := first.DenomOut
	for _, step := range route {
		hops = append(hops, NewSwap(step.PoolID, denomIn, step.DenomOut))
		denomIn = step.DenomOut
	}
	return hops
}

// SwapAmount is a tagged amount naming which side of a swap is the exact/known
// quantity. Exactly one of In or Out is set.
type SwapAmount struct {
	In  *math.Int `json:"in,omitempty"`
	Out *math.Int `json:"out,omitempty"`
}

// NewSwapAmountIn returns a SwapAmount with the input side exact
func NewSwapAmountIn(amount math.Int) SwapAmount {
	return SwapAmount{In: &amount}
}

// NewSwapAmountOut returns a SwapAmount with the output side exact
func NewSwapAmountOut(amount math.Int) SwapAmount {
	return SwapAmount{Out: &amount}
}

// IsIn reports whether the input side is the exact side
func (s SwapAmount) IsIn() bool {
	return s.In != nil
}

// IsOut reports whether the output side is the exact side
func (s SwapAmount) IsOut() bool {
	return s.Out != nil
}

// AsIn extracts the input amount. Returns ErrSwapSideMismatch if the amount is
// an output amount.
func (s SwapAmount) AsIn() (math.Int, error) {
	if s.In == nil {
		return math.Int{}, ErrSwapSideMismatch.Wrap("expected input amount, got output")
	}
	return *s.In, nil
}

// AsOut extracts the output amount. Returns ErrSwapSideMismatch if the amount is
// an input amount.
func (s SwapAmount) AsOut() (math.Int, error) {
	if s.Out == nil {
		return math.Int{}, ErrSwapSideMismatch.Wrap("expected output amount, got input")
	}
	return *s.Out, nil
}

// Validate checks that exactly one side is set and the amount is non-negative
func (s SwapAmount) Validate() error {
	switch {
	case s.In == nil && s.Out == nil:
		return ErrInvalidAmount.Wrap("swap amount must set one of in/out")
	case s.In != nil && s.Out != nil:
		return ErrInvalidAmount.Wrap("swap amount must set only one of in/out")
	case s.In != nil && (s.In.IsNil() || s.In.IsNegative()):
		return ErrInvalidAmount.Wrap("input amount must be non-negative")
	case s.Out != nil && (s.Out.IsNil() || s.Out.IsNegative()):
		return ErrInvalidAmount.Wrap("output amount must be non-negative")
	}
	return nil
}

// ExactIn fixes the input amount and bounds the acceptable output from below.
type ExactIn struct {
	Input     math.Int `json:"input"`
	MinOutput math.Int `json:"min_output"`
}

// ExactOut fixes the output amount and bounds the acceptable input from above.
type ExactOut struct {
	Output   math.Int `json:"output"`
	MaxInput math.Int `json:"max_input"`
}

// SwapAmountWithLimit is the caller-facing swap request: the exact side plus the
// slippage bound for the opposite side. Exactly one variant is set.
type SwapAmountWithLimit struct {
	ExactIn  *ExactIn  `json:"exact_in,omitempty"`
	ExactOut *ExactOut `json:"exact_out,omitempty"`
}

// NewExactIn builds an exact-in request with a minimum output bound
func NewExactIn(input, minOutput math.Int) SwapAmountWithLimit {
	return SwapAmountWithLimit{ExactIn: &ExactIn{Input: input, MinOutput: minOutput}}
}

// NewExactOut builds an exact-out request with a maximum input bound
func NewExactOut(output, maxInput math.Int) SwapAmountWithLimit {
	return SwapAmountWithLimit{ExactOut: &ExactOut{Output: output, MaxInput: maxInput}}
}

// DiscardLimit drops the slippage bound, keeping only the exact side. A request
// with neither variant set yields the zero SwapAmount, which fails Validate.
func (s SwapAmountWithLimit) DiscardLimit() SwapAmount {
	switch {
	case s.ExactIn != nil:
		return NewSwapAmountIn(s.ExactIn.Input)
	case s.ExactOut != nil:
		return NewSwapAmountOut(s.ExactOut.Output)
	}
	return SwapAmount{}
}

// Validate checks that exactly one variant is set with sane amounts
func (s SwapAmountWithLimit) Validate() error {
	switch {
	case s.ExactIn == nil && s.ExactOut == nil:
		return ErrInvalidAmount.Wrap("swap limit must set one of exact_in/exact_out")
	case s.ExactIn != nil && s.ExactOut != nil:
		return ErrInvalidAmount.Wrap("swap limit must set only one of exact_in/exact_out")
	case s.ExactIn != nil:
		if s.ExactIn.Input.IsNil() || !s.ExactIn.Input.IsPositive() {
			return ErrInvalidAmount.Wrap("exact input must be positive")
		}
		if s.ExactIn.MinOutput.IsNil() || s.ExactIn.MinOutput.IsNegative() {
			return ErrInvalidAmount.Wrap("min output cannot be negative")
		}
	case s.ExactOut != nil:
		if s.ExactOut.Output.IsNil() || !s.ExactOut.Output.IsPositive() {
			return ErrInvalidAmount.Wrap("exact output must be positive")
		}
		if s.ExactOut.MaxInput.IsNil() || s.ExactOut.MaxInput.IsNegative() {
			return ErrInvalidAmount.Wrap("max input cannot be negative")
		}
	}
	return nil
}

// CheckLimit compares the routing result against the caller's slippage bound.
// The result is the side opposite the exact side: an output amount for exact-in,
// an input amount for exact-out.
func (s SwapAmountWithLimit) CheckLimit(result SwapAmount) error {
	if s.ExactIn != nil {
		out, err := result.AsOut()
		if err != nil {
			return err
		}
		if out.LT(s.ExactIn.MinOutput) {
			return ErrPriceTooLow.Wrapf("output %s below minimum %s", out, s.ExactIn.MinOutput)
		}
		return nil
	}
	if s.ExactOut == nil {
		return ErrInvalidAmount.Wrap("swap limit must set one of exact_in/exact_out")
	}
	in, err := result.AsIn()
	if err != nil {
		return err
	}
	if in.GT(s.ExactOut.MaxInput) {
		return ErrPriceTooLow.Wrapf("input %s above maximum %s", in, s.ExactOut.MaxInput)
	}
	return nil
}
