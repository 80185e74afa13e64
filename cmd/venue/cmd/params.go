package cmd

import (
	"context"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

const (
	flagSwapFee      = "swap-fee"
	flagMinLiquidity = "min-liquidity"
)

func newParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show or update the venue parameters",
		Long: `Without flags, params prints the stored venue parameters. Setting --swap-fee
or --min-liquidity updates them; the new fee applies to pools created afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, closeFn, err := openVenue()
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := context.Background()
			params, err := k.GetParams(ctx)
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed(flagSwapFee) {
				feeStr, _ := cmd.Flags().GetString(flagSwapFee)
				fee, err := math.LegacyNewDecFromStr(feeStr)
				if err != nil {
					return err
				}
				params.SwapFee = fee
				changed = true
			}
			if cmd.Flags().Changed(flagMinLiquidity) {
				minStr, _ := cmd.Flags().GetString(flagMinLiquidity)
				minLiq, ok := math.NewIntFromString(minStr)
				if !ok {
					return types.ErrInvalidAmount.Wrapf("min-liquidity %q", minStr)
				}
				params.MinLiquidity = minLiq
				changed = true
			}
			if changed {
				if err := k.SetParams(ctx, params); err != nil {
					return err
				}
			}
			return printJSON(cmd, params)
		},
	}
	cmd.Flags().String(flagSwapFee, "", "swap fee rate in [0, 1), e.g. 0.003")
	cmd.Flags().String(flagMinLiquidity, "", "minimum initial LP shares for new pools")
	return cmd
}
