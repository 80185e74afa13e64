package cmd

import (
	"context"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

const (
	flagExactIn  = "exact-in"
	flagMinOut   = "min-out"
	flagExactOut = "exact-out"
	flagMaxIn    = "max-in"
	flagRoute    = "route"
)

func newCreatePoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-pool [creator] [coin-a] [coin-b]",
		Short: "Create a pool seeded with two coins",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			coinA, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return err
			}
			coinB, err := sdk.ParseCoinNormalized(args[2])
			if err != nil {
				return err
			}

			k, closeFn, err := openVenue()
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := k.CreatePool(context.Background(), types.NewMsgCreatePool(args[0], coinA, coinB))
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [sender] [pool-id] [denom-in] [denom-out]",
		Short: "Swap over one or more pools",
		Long: `Swap denom-in for denom-out on pool-id. Continuation hops are given with
--route as comma-separated pool-id:denom-out pairs, each consuming the previous
hop's output; the route's last step names the trade's final output. Exactly one
of --exact-in (with --min-out) or --exact-out (with --max-in) must be set.`,
		Example: `  venue swap trader 1 osmo atom --exact-in 4000 --min-out 900
  venue swap trader 1 osmo atom --route 2:btc --exact-out 1000 --max-in 5000`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := cast.ToUint64E(args[1])
			if err != nil {
				return err
			}
			route, err := parseRoute(cmd)
			if err != nil {
				return err
			}
			amount, err := parseLimit(cmd)
			if err != nil {
				return err
			}

			first := types.NewSwap(poolID, args[2], args[3])

			k, closeFn, err := openVenue()
			if err != nil {
				return err
			}
			defer closeFn()

			msg := types.NewMsgSwap(args[0], first, route, amount)
			resp, err := k.Swap(context.Background(), msg)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	addSwapFlags(cmd)
	return cmd
}

func addSwapFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagRoute, "", "continuation hops as pool-id:denom-out pairs, comma separated")
	cmd.Flags().String(flagExactIn, "", "exact input amount")
	cmd.Flags().String(flagMinOut, "0", "minimum acceptable output (with --exact-in)")
	cmd.Flags().String(flagExactOut, "", "exact output amount")
	cmd.Flags().String(flagMaxIn, "", "maximum acceptable input (with --exact-out)")
}

func parseRoute(cmd *cobra.Command) ([]types.Step, error) {
	raw, err := cmd.Flags().GetString(flagRoute)
	if err != nil || raw == "" {
		return nil, err
	}
	var route []types.Step
	for _, part := range strings.Split(raw, ",") {
		poolStr, denom, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, types.ErrInvalidRoute.Wrapf("step %q is not pool-id:denom-out", part)
		}
		poolID, err := cast.ToUint64E(poolStr)
		if err != nil {
			return nil, types.ErrInvalidRoute.Wrapf("step %q: %v", part, err)
		}
		route = append(route, types.NewStep(poolID, denom))
	}
	return route, nil
}

func parseLimit(cmd *cobra.Command) (types.SwapAmountWithLimit, error) {
	exactIn, err := cmd.Flags().GetString(flagExactIn)
	if err != nil {
		return types.SwapAmountWithLimit{}, err
	}
	exactOut, err := cmd.Flags().GetString(flagExactOut)
	if err != nil {
		return types.SwapAmountWithLimit{}, err
	}

	switch {
	case exactIn != "" && exactOut == "":
		input, ok := math.NewIntFromString(exactIn)
		if !ok {
			return types.SwapAmountWithLimit{}, types.ErrInvalidAmount.Wrapf("exact-in %q", exactIn)
		}
		minOutStr, _ := cmd.Flags().GetString(flagMinOut)
		minOut, ok := math.NewIntFromString(minOutStr)
		if !ok {
			return types.SwapAmountWithLimit{}, types.ErrInvalidAmount.Wrapf("min-out %q", minOutStr)
		}
		return types.NewExactIn(input, minOut), nil

	case exactOut != "" && exactIn == "":
		output, ok := math.NewIntFromString(exactOut)
		if !ok {
			return types.SwapAmountWithLimit{}, types.ErrInvalidAmount.Wrapf("exact-out %q", exactOut)
		}
		maxInStr, _ := cmd.Flags().GetString(flagMaxIn)
		maxIn, ok := math.NewIntFromString(maxInStr)
		if !ok {
			return types.SwapAmountWithLimit{}, types.ErrInvalidAmount.Wrapf("max-in %q", maxInStr)
		}
		return types.NewExactOut(output, maxIn), nil

	default:
		return types.SwapAmountWithLimit{}, types.ErrInvalidAmount.Wrap(
			"set exactly one of --exact-in/--exact-out")
	}
}
