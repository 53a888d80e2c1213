package withdraw

import (
	"context"
	"fmt"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

// Service exposes withdraw operations, enforcing the creation, paging and
// target-status invariants before the store is touched.
type Service struct {
	repo Repository
}

// NewService builds a withdraw service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create opens a withdrawal request in the created status.
func (s *Service) Create(ctx context.Context, input CreateInput) (Withdraw, error) {
	if input.WalletID == "" {
		return Withdraw{}, fmt.Errorf("%w: wallet_id is required", record.ErrInvalidInput)
	}
	if input.Settle == "" {
		return Withdraw{}, fmt.Errorf("%w: settle is required", record.ErrInvalidInput)
	}
	if input.Amount < 0 {
		return Withdraw{}, fmt.Errorf("%w: amount must not be negative", record.ErrInvalidInput)
	}
	return s.repo.Create(ctx, input)
}

// Get retrieves one withdrawal scoped to the wallet.
func (s *Service) Get(ctx context.Context, walletID, id string) (Withdraw, error) {
	return s.repo.Get(ctx, walletID, id)
}

// List returns one page of the wallet's withdrawals.
func (s *Service) List(ctx context.Context, walletID string, q record.PageQuery) ([]Withdraw, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: page and count must be at least 1", record.ErrInvalidInput)
	}
	return s.repo.List(ctx, walletID, q)
}

// SetStatus moves the withdrawal to the requested target. Clients may only
// request pending or canceled; everything else is rejected before the store
// is touched.
func (s *Service) SetStatus(ctx context.Context, walletID, id string, target string) (Withdraw, error) {
	status, err := ParseStatus(target)
	if err != nil {
		return Withdraw{}, err
	}
	if err := checkTarget(status); err != nil {
		return Withdraw{}, err
	}
	return s.repo.SetStatus(ctx, walletID, id, status)
}
