package recharge

import (
	"context"
	"fmt"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

// Service exposes recharge operations, enforcing the creation and paging
// invariants before the store is touched.
type Service struct {
	repo Repository
}

// NewService builds a recharge service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records a deposit. There is no minimum-amount rule; only the
// persistence-time invariants are checked.
func (s *Service) Create(ctx context.Context, input CreateInput) (Recharge, error) {
	if input.WalletID == "" {
		return Recharge{}, fmt.Errorf("%w: wallet_id is required", record.ErrInvalidInput)
	}
	if input.Settle == "" {
		return Recharge{}, fmt.Errorf("%w: settle is required", record.ErrInvalidInput)
	}
	if input.RechargeAmount < 0 {
		return Recharge{}, fmt.Errorf("%w: recharge_amount must not be negative", record.ErrInvalidInput)
	}
	return s.repo.Create(ctx, input)
}

// Get retrieves one recharge scoped to the wallet.
func (s *Service) Get(ctx context.Context, walletID, id string) (Recharge, error) {
	return s.repo.Get(ctx, walletID, id)
}

// List returns one page of the wallet's recharges.
func (s *Service) List(ctx context.Context, walletID string, q record.PageQuery) ([]Recharge, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: page and count must be at least 1", record.ErrInvalidInput)
	}
	return s.repo.List(ctx, walletID, q)
}
