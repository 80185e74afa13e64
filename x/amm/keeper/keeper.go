package keeper

import (
	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/osmosis-labs/bindings/x/amm/types"
)

// Keeper owns the pool registry and executes swap commands and queries against
// it. All access goes through an explicit Keeper handle; there is no ambient
// global pool state.
type Keeper struct {
	db      dbm.DB
	bank    types.BankKeeper
	logger  log.Logger
	metrics *Metrics
}

// NewKeeper creates a new amm Keeper instance over the given backing store
func NewKeeper(db dbm.DB, bank types.BankKeeper, logger log.Logger) *Keeper {
	return &Keeper{
		db:      db,
		bank:    bank,
		logger:  logger.With("module", "x/"+types.ModuleName),
		metrics: NewMetrics(),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

var (
	_ types.MsgServer   = (*Keeper)(nil)
	_ types.QueryServer = (*Keeper)(nil)
)
