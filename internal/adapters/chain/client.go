package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/skillshare-dao/sdao-cli/internal/config"
	"github.com/skillshare-dao/sdao-cli/internal/domain"
	"github.com/skillshare-dao/sdao-cli/internal/domain/bindings"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

const receiptPollInterval = 2 * time.Second

// Client implements the ChainClient port over a signer-bound DAO contract
// handle. Every confirmed call is irreversible chain state.
type Client struct {
	eth            *ethclient.Client
	dao            *bindings.DAO
	daoAddr        common.Address
	key            *ecdsa.PrivateKey
	from           common.Address
	wantChainID    uint64
	chainID        *big.Int
	proposalFee    *big.Int
	confirmTimeout time.Duration
	log            *slog.Logger
}

// NewClient dials the configured RPC endpoint and binds the signing key.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) (*Client, error) {
	eth, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	if !common.IsHexAddress(cfg.DAOAddress) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, cfg.DAOAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &Client{
		eth:            eth,
		dao:            bindings.NewDAO(),
		daoAddr:        common.HexToAddress(cfg.DAOAddress),
		key:            key,
		from:           crypto.PubkeyToAddress(key.PublicKey),
		wantChainID:    cfg.ChainID,
		proposalFee:    cfg.ProposalFeeWei,
		confirmTimeout: cfg.ConfirmTimeout,
		log:            log,
	}, nil
}

// WalletAddress returns the checksummed address of the signing wallet.
func (c *Client) WalletAddress() string {
	return c.from.Hex()
}

// Balance returns the wallet balance at the latest block.
func (c *Client) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := c.eth.BalanceAt(ctx, c.from, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

// CreateProposal submits the fee-bearing creation transaction and waits for
// confirmation. The duration window is checked locally first, mirroring the
// contract-side constraint so users get instant feedback instead of a
// guaranteed revert.
func (c *Client) CreateProposal(ctx context.Context, title, description string, durationDays int) (uint64, *usecase.ChainReceipt, error) {
	if durationDays < domain.MinProposalDurationDays || durationDays > domain.MaxProposalDurationDays {
		return 0, nil, domain.DurationOutOfRangeErr{Days: durationDays}
	}

	endTime := big.NewInt(time.Now().Add(time.Duration(durationDays) * 24 * time.Hour).Unix())
	data := c.dao.PackCreateProposal(title, description, endTime)

	receipt, logs, err := c.submit(ctx, "createProposal", c.daoAddr, c.proposalFee, data)
	if err != nil {
		return 0, nil, err
	}

	id, err := c.proposalIDFromLogs(logs)
	if err != nil {
		return 0, nil, fmt.Errorf("proposal confirmed in %s but id not found: %w", receipt.TxHash, err)
	}
	return id, receipt, nil
}

// Vote reads the proposal end time from the chain and fails fast with
// ErrVotingClosed before broadcasting anything past-deadline.
func (c *Client) Vote(ctx context.Context, proposalID uint64, support bool) (*usecase.ChainReceipt, error) {
	proposal, err := c.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if time.Now().After(proposal.EndTime) {
		return nil, domain.ErrVotingClosed
	}

	data := c.dao.PackVote(new(big.Int).SetUint64(proposalID), support)
	receipt, _, err := c.submit(ctx, "vote", c.daoAddr, nil, data)
	return receipt, err
}

// ExecuteProposal submits the execute transaction. Preconditions (ended,
// passing, not executed) are enforced contract-side and surface as a revert.
func (c *Client) ExecuteProposal(ctx context.Context, proposalID uint64) (*usecase.ChainReceipt, error) {
	data := c.dao.PackExecuteProposal(new(big.Int).SetUint64(proposalID))
	receipt, _, err := c.submit(ctx, "executeProposal", c.daoAddr, nil, data)
	return receipt, err
}

// GetProposal reads authoritative proposal state from the contract.
func (c *Client) GetProposal(ctx context.Context, proposalID uint64) (*usecase.ChainProposal, error) {
	data := c.dao.PackGetProposal(new(big.Int).SetUint64(proposalID))
	out, err := c.call(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to read proposal %d: %w", proposalID, err)
	}
	info, err := c.dao.UnpackGetProposal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to decode proposal %d: %w", proposalID, err)
	}

	return &usecase.ChainProposal{
		ID:          proposalID,
		Title:       info.Title,
		Description: info.Description,
		Creator:     info.Creator.Hex(),
		StartTime:   time.Unix(info.StartTime.Int64(), 0),
		EndTime:     time.Unix(info.EndTime.Int64(), 0),
		YesVotes:    info.YesVotes.Uint64(),
		NoVotes:     info.NoVotes.Uint64(),
		Executed:    info.Executed,
	}, nil
}

// GetVotingPower reads the voting power of an address.
func (c *Client) GetVotingPower(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	data := c.dao.PackGetVotingPower(common.HexToAddress(address))
	out, err := c.call(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to read voting power: %w", err)
	}
	return c.dao.UnpackGetVotingPower(out)
}

// Transfer sends a plain value transfer to the given address.
func (c *Client) Transfer(ctx context.Context, to string, amountWei *big.Int) (*usecase.ChainReceipt, error) {
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, to)
	}
	receipt, _, err := c.submit(ctx, "transfer", common.HexToAddress(to), amountWei, nil)
	return receipt, err
}

func (c *Client) call(ctx context.Context, data []byte) ([]byte, error) {
	return c.eth.CallContract(ctx, ethereum.CallMsg{
		From: c.from,
		To:   &c.daoAddr,
		Data: data,
	}, nil)
}

// submit estimates, signs, broadcasts and waits for one transaction. A
// failed estimate means the call would revert, so nothing is broadcast.
func (c *Client) submit(ctx context.Context, op string, to common.Address, value *big.Int, data []byte) (*usecase.ChainReceipt, []*types.Log, error) {
	chainID, err := c.networkID(ctx)
	if err != nil {
		return nil, nil, err
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to get nonce: %w", op, err)
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to get gas price: %w", op, err)
	}

	gas, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From:  c.from,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		if strings.Contains(err.Error(), "insufficient funds") {
			return nil, nil, fmt.Errorf("%s: %w", op, domain.ErrInsufficientFunds)
		}
		return nil, nil, domain.ChainRejectedErr{Op: op, Reason: revertReason(err)}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas + gas/5, // headroom over the estimate
		To:       &to,
		Value:    value,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.key)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to sign transaction: %w", op, err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		if strings.Contains(err.Error(), "insufficient funds") {
			return nil, nil, fmt.Errorf("%s: %w", op, domain.ErrInsufficientFunds)
		}
		return nil, nil, fmt.Errorf("%s: failed to broadcast transaction: %w", op, err)
	}

	c.log.Debug("transaction broadcast", "op", op, "tx", signed.Hash().Hex())
	return c.waitMined(ctx, op, signed.Hash())
}

// waitMined polls for the receipt until confirmation or the configured
// timeout. Block inclusion can take tens of seconds on public networks.
func (c *Client) waitMined(ctx context.Context, op string, hash common.Hash) (*usecase.ChainReceipt, []*types.Log, error) {
	deadline := time.NewTimer(c.confirmTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return nil, nil, domain.ChainRejectedErr{Op: op}
			}
			return &usecase.ChainReceipt{
				TxHash:      hash.Hex(),
				BlockNumber: receipt.BlockNumber.Uint64(),
			}, receipt.Logs, nil
		}
		if !errors.Is(err, ethereum.NotFound) && !strings.Contains(err.Error(), "not found") {
			return nil, nil, fmt.Errorf("%s: failed to get transaction receipt: %w", op, err)
		}

		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case <-deadline.C:
			return nil, nil, domain.ChainTimeoutErr{Op: op, TxHash: hash.Hex()}
		case <-ticker.C:
		}
	}
}

func (c *Client) networkID(ctx context.Context) (*big.Int, error) {
	if c.chainID != nil {
		return c.chainID, nil
	}
	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if c.wantChainID != 0 && chainID.Uint64() != c.wantChainID {
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", c.wantChainID, chainID.Uint64())
	}
	c.chainID = chainID
	return chainID, nil
}

func (c *Client) proposalIDFromLogs(logs []*types.Log) (uint64, error) {
	for _, entry := range logs {
		if entry.Address != c.daoAddr || len(entry.Topics) == 0 {
			continue
		}
		event, err := c.dao.UnpackProposalCreatedEvent(entry)
		if err != nil {
			continue
		}
		return event.ProposalId.Uint64(), nil
	}
	return 0, fmt.Errorf("no ProposalCreated event in receipt")
}

// revertReason extracts the human part of an execution revert error.
func revertReason(err error) string {
	msg := err.Error()
	if _, reason, ok := strings.Cut(msg, "execution reverted:"); ok {
		return strings.TrimSpace(reason)
	}
	return msg
}

// Ensure the adapter implements the interface
var _ usecase.ChainClient = (*Client)(nil)
