package adapters

import (
	"github.com/google/wire"

	"github.com/skillshare-dao/sdao-cli/internal/adapters/chain"
	"github.com/skillshare-dao/sdao-cli/internal/adapters/ledger"
	"github.com/skillshare-dao/sdao-cli/internal/adapters/replica"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// ChainSet provides the go-ethereum backed chain client
var ChainSet = wire.NewSet(
	chain.NewClient,
	wire.Bind(new(usecase.ChainClient), new(*chain.Client)),
)

// ReplicaSet provides the Postgres replica store
var ReplicaSet = wire.NewSet(
	replica.NewStore,
	wire.Bind(new(usecase.ReplicaStore), new(*replica.Store)),
)

// LedgerSet provides the local purchase ledger
var LedgerSet = wire.NewSet(
	ledger.NewPurchaseStore,
	wire.Bind(new(usecase.PurchaseLedger), new(*ledger.PurchaseStore)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ChainSet,
	ReplicaSet,
	LedgerSet,
)
