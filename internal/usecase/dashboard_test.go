package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	wallet := "0x1111111111111111111111111111111111111111"

	t.Run("assembles the full overview", func(t *testing.T) {
		chain := new(MockChainClient)
		ledger := new(MockPurchaseLedger)
		uc := usecase.NewDashboard(chain, ledger, testLogger())

		chain.On("WalletAddress").Return(wallet)
		chain.On("Balance", ctx).Return(big.NewInt(1e18), nil)
		chain.On("GetVotingPower", ctx, wallet).Return(big.NewInt(3), nil)
		ledger.On("List", wallet).Return([]models.Purchase{{CourseTitle: "Intro to Rollups"}}, nil)

		result, err := uc.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, wallet, result.Wallet)
		assert.Equal(t, big.NewInt(1e18), result.BalanceWei)
		assert.Equal(t, big.NewInt(3), result.VotingPower)
		assert.Len(t, result.Purchases, 1)
	})

	t.Run("chain read failures leave fields nil instead of failing", func(t *testing.T) {
		chain := new(MockChainClient)
		ledger := new(MockPurchaseLedger)
		uc := usecase.NewDashboard(chain, ledger, testLogger())

		chain.On("WalletAddress").Return(wallet)
		chain.On("Balance", ctx).Return(nil, errors.New("rpc: connection refused"))
		chain.On("GetVotingPower", ctx, wallet).Return(nil, errors.New("rpc: connection refused"))
		ledger.On("List", wallet).Return([]models.Purchase{}, nil)

		result, err := uc.Run(ctx)

		require.NoError(t, err)
		assert.Nil(t, result.BalanceWei)
		assert.Nil(t, result.VotingPower)
	})
}
