package config

import (
	"math/big"
	"time"
)

// RuntimeConfig is the resolved configuration for a single command run,
// built by Provider from flags, environment and the local config file.
type RuntimeConfig struct {
	// RPCURL is the Ethereum JSON-RPC endpoint
	RPCURL string

	// ChainID is the expected chain ID; 0 accepts whatever the node reports
	ChainID uint64

	// DAOAddress is the deployed DAO contract address
	DAOAddress string

	// PrivateKey is the hex-encoded signing key for the connected wallet
	PrivateKey string

	// ReplicaDSN is the Postgres DSN of the hosted replica store
	ReplicaDSN string

	// DataDir holds local state such as the purchase ledger
	DataDir string

	// ProposalFeeWei is the fixed fee the contract charges on creation
	ProposalFeeWei *big.Int

	// ConfirmTimeout bounds the wait for transaction confirmation
	ConfirmTimeout time.Duration

	// Debug enables debug logging
	Debug bool

	// NonInteractive disables confirmation prompts
	NonInteractive bool
}
