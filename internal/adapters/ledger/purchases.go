package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/skillshare-dao/sdao-cli/internal/config"
	"github.com/skillshare-dao/sdao-cli/internal/domain/models"
	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// PurchaseStore keeps purchase records in a JSON file per wallet under the
// data directory. It is a convenience side-store with no consistency
// guarantee against chain or replica state.
type PurchaseStore struct {
	dir string
	mu  sync.Mutex
}

// NewPurchaseStore creates the ledger directory if needed.
func NewPurchaseStore(cfg *config.RuntimeConfig) (*PurchaseStore, error) {
	dir := filepath.Join(cfg.DataDir, "purchases")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}
	return &PurchaseStore{dir: dir}, nil
}

// Record appends a purchase to the wallet's ledger file.
func (s *PurchaseStore) Record(wallet string, p models.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchases, err := s.read(wallet)
	if err != nil {
		return err
	}
	purchases = append(purchases, p)

	data, err := json.MarshalIndent(purchases, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	// Write-then-rename so a crash mid-write can't corrupt the ledger
	path := s.path(wallet)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// List returns all recorded purchases for a wallet, oldest first.
func (s *PurchaseStore) List(wallet string) ([]models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(wallet)
}

func (s *PurchaseStore) read(wallet string) ([]models.Purchase, error) {
	data, err := os.ReadFile(s.path(wallet))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	var purchases []models.Purchase
	if err := json.Unmarshal(data, &purchases); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}
	return purchases, nil
}

func (s *PurchaseStore) path(wallet string) string {
	return filepath.Join(s.dir, strings.ToLower(wallet)+".json")
}

// Ensure the adapter implements the interface
var _ usecase.PurchaseLedger = (*PurchaseStore)(nil)
