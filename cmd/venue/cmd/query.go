package cmd

import (
	"context"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

const flagWithFee = "with-fee"

func newPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Show the assets and LP share supply of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}

			k, closeFn, err := openVenue()
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := k.PoolState(context.Background(), &types.QueryPoolStateRequest{PoolID: poolID})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List all pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, closeFn, err := openVenue()
			if err != nil {
				return err
			}
			defer closeFn()

			var states []types.PoolStateResponse
			err = k.IteratePools(context.Background(), func(poolID uint64, pool types.Pool) bool {
				states = append(states, pool.IntoPoolState(poolID))
				return false
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, states)
		},
	}
}

func newSpotPriceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spot-price [pool-id] [denom-in] [denom-out]",
		Short: "Show the instantaneous price of denom-out in units of denom-in",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}
			withFee, err := cmd.Flags().GetBool(flagWithFee)
			if err != nil {
				return err
			}

			k, closeFn, err := openVenue()
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := k.SpotPrice(context.Background(), &types.QuerySpotPriceRequest{
				Swap:        types.NewSwap(poolID, args[1], args[2]),
				WithSwapFee: withFee,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	cmd.Flags().Bool(flagWithFee, false, "quote the price net of the swap fee")
	return cmd
}

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [pool-id] [denom-in] [denom-out]",
		Short: "Price a swap without touching any pool",
		Long: `Estimate what a swap of denom-in for denom-out on pool-id would settle at.
Continuation hops are given with --route as comma-separated pool-id:denom-out
pairs, each consuming the previous hop's output.`,
		Example: `  venue estimate 1 osmo atom --exact-in 4000
  venue estimate 1 osmo atom --route 2:btc --exact-out 1000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}
			route, err := parseRoute(cmd)
			if err != nil {
				return err
			}
			amount, err := parseAmount(cmd)
			if err != nil {
				return err
			}

			k, closeFn, err := openVenue()
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := k.EstimateSwap(context.Background(), &types.QueryEstimateSwapRequest{
				First:  types.NewSwap(poolID, args[1], args[2]),
				Route:  route,
				Amount: amount,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	cmd.Flags().String(flagRoute, "", "continuation hops as pool-id:denom-out pairs, comma separated")
	cmd.Flags().String(flagExactIn, "", "exact input amount")
	cmd.Flags().String(flagExactOut, "", "exact output amount")
	return cmd
}

// parseAmount reads the limitless exact side used by estimates
func parseAmount(cmd *cobra.Command) (types.SwapAmount, error) {
	exactIn, err := cmd.Flags().GetString(flagExactIn)
	if err != nil {
		return types.SwapAmount{}, err
	}
	exactOut, err := cmd.Flags().GetString(flagExactOut)
	if err != nil {
		return types.SwapAmount{}, err
	}

	switch {
	case exactIn != "" && exactOut == "":
		input, ok := math.NewIntFromString(exactIn)
		if !ok {
			return types.SwapAmount{}, types.ErrInvalidAmount.Wrapf("exact-in %q", exactIn)
		}
		return types.NewSwapAmountIn(input), nil
	case exactOut != "" && exactIn == "":
		output, ok := math.NewIntFromString(exactOut)
		if !ok {
			return types.SwapAmount{}, types.ErrInvalidAmount.Wrapf("exact-out %q", exactOut)
		}
		return types.NewSwapAmountOut(output), nil
	default:
		return types.SwapAmount{}, types.ErrInvalidAmount.Wrap(
			"set exactly one of --exact-in/--exact-out")
	}
}
