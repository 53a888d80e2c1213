package recharge

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Recharge
}

// NewMemoryRepository constructs an in-memory repository for tests and
// database-less development runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Recharge)}
}

func (r *memoryRepository) Create(_ context.Context, input CreateInput) (Recharge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := Recharge{
		ID:             uuid.NewString(),
		Type:           ObjType,
		Created:        record.NewTime(time.Now()),
		Amount:         input.RechargeAmount,
		RechargeAmount: input.RechargeAmount,
		Fee:            0,
		Succeeded:      false,
		WalletID:       input.WalletID,
		Description:    input.Description,
		Extra:          input.Extra,
		Settle:         input.Settle,
	}
	r.storage[rec.ID] = rec
	return rec, nil
}

func (r *memoryRepository) Get(_ context.Context, walletID, id string) (Recharge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.storage[id]
	if !ok || rec.WalletID != walletID {
		return Recharge{}, record.ErrNotFound
	}
	return rec, nil
}

func (r *memoryRepository) List(_ context.Context, walletID string, q record.PageQuery) ([]Recharge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Recharge{}
	for _, rec := range r.storage {
		if rec.WalletID != walletID || !q.InWindow(rec.Created.Time) {
			continue
		}
		matched = append(matched, rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Created.Before(matched[j].Created.Time)
	})

	return page(matched, q), nil
}

func page(recs []Recharge, q record.PageQuery) []Recharge {
	offset := q.Offset()
	if offset >= int64(len(recs)) {
		return []Recharge{}
	}
	recs = recs[offset:]
	if q.Limit() < int64(len(recs)) {
		recs = recs[:q.Limit()]
	}
	return recs
}
