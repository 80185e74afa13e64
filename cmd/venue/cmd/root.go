package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/osmosis-labs/bindings/x/amm/keeper"
	"github.com/osmosis-labs/bindings/x/amm/types"
)

const (
	flagHome    = "home"
	flagBackend = "db-backend"
)

// NewRootCmd builds the venue CLI: a local AMM venue driven through the same
// command/query surface a contract under test would use.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "venue",
		Short: "Local AMM venue simulator",
		Long: `venue drives a local automated-market-maker venue: create pools, execute
multi-hop swaps with slippage bounds, and run read-only price queries against
a persistent local store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			viper.SetEnvPrefix("VENUE")
			viper.AutomaticEnv()
			return nil
		},
	}

	defaultHome := ".venue"
	if home, err := os.UserHomeDir(); err == nil {
		defaultHome = filepath.Join(home, ".venue")
	}
	rootCmd.PersistentFlags().String(flagHome, defaultHome, "directory for the venue store")
	rootCmd.PersistentFlags().String(flagBackend, string(dbm.GoLevelDBBackend), "db backend (goleveldb|memdb)")

	rootCmd.AddCommand(
		newCreatePoolCmd(),
		newSwapCmd(),
		newPoolCmd(),
		newPoolsCmd(),
		newSpotPriceCmd(),
		newEstimateCmd(),
		newParamsCmd(),
	)
	return rootCmd
}

// ledgerStub stands in for the host ledger: settlement legs are logged, not
// tracked, since trader balances are out of the venue's scope.
type ledgerStub struct {
	logger log.Logger
}

func (l ledgerStub) BurnCoin(_ context.Context, from string, coin sdk.Coin) error {
	l.logger.Info("burn", "from", from, "coin", coin.String())
	return nil
}

func (l ledgerStub) MintCoin(_ context.Context, to string, coin sdk.Coin) error {
	l.logger.Info("mint", "to", to, "coin", coin.String())
	return nil
}

// openVenue opens the backing store and wires up a keeper over it
func openVenue() (*keeper.Keeper, func(), error) {
	home := viper.GetString(flagHome)
	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create home dir: %w", err)
	}

	backend := dbm.BackendType(viper.GetString(flagBackend))
	db, err := dbm.NewDB("venue", backend, home)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	logger := log.NewLogger(os.Stderr)
	k := keeper.NewKeeper(db, ledgerStub{logger: logger}, logger)
	return k, func() { _ = db.Close() }, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(bz))
	return nil
}

var _ types.BankKeeper = ledgerStub{}
