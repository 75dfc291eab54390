package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
)

// Dashboard gathers the wallet-centric view: balance, voting power and
// purchased courses.
type Dashboard struct {
	chain  ChainClient
	ledger PurchaseLedger
	log    *slog.Logger
}

// NewDashboard creates a new dashboard use case
func NewDashboard(chain ChainClient, ledger PurchaseLedger, log *slog.Logger) *Dashboard {
	return &Dashboard{chain: chain, ledger: ledger, log: log}
}

// DashboardResult contains the wallet overview.
type DashboardResult struct {
	Wallet      string
	BalanceWei  *big.Int
	VotingPower *big.Int
	Purchases   []models.Purchase
}

// Run assembles the overview. Chain reads that fail leave their fields nil
// rather than failing the whole view.
func (uc *Dashboard) Run(ctx context.Context) (*DashboardResult, error) {
	wallet := uc.chain.WalletAddress()
	result := &DashboardResult{Wallet: wallet}

	if balance, err := uc.chain.Balance(ctx); err == nil {
		result.BalanceWei = balance
	} else {
		uc.log.Warn("failed to read wallet balance", "err", err)
	}

	if power, err := uc.chain.GetVotingPower(ctx, wallet); err == nil {
		result.VotingPower = power
	} else {
		uc.log.Warn("failed to read voting power", "err", err)
	}

	purchases, err := uc.ledger.List(wallet)
	if err != nil {
		return nil, err
	}
	result.Purchases = purchases

	return result, nil
}
