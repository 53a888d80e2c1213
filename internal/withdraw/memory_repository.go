package withdraw

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

type memoryRepository struct {
	mu      sync.RWMutex
	strict  bool
	storage map[string]Withdraw
}

// NewMemoryRepository constructs an in-memory repository for tests and
// database-less development runs. The strict flag mirrors the Postgres
// repository's transition checking.
func NewMemoryRepository(strict bool) Repository {
	return &memoryRepository{strict: strict, storage: make(map[string]Withdraw)}
}

func (r *memoryRepository) Create(_ context.Context, input CreateInput) (Withdraw, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := Withdraw{
		ID:          uuid.NewString(),
		Type:        ObjType,
		Created:     record.NewTime(time.Now()),
		Extra:       input.Extra,
		Description: input.Description,
		Status:      StatusCreated,
		WalletID:    input.WalletID,
		Settle:      input.Settle,
		Amount:      input.Amount,
	}
	r.storage[w.ID] = w
	return w, nil
}

func (r *memoryRepository) Get(_ context.Context, walletID, id string) (Withdraw, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.storage[id]
	if !ok || w.WalletID != walletID {
		return Withdraw{}, record.ErrNotFound
	}
	return w, nil
}

func (r *memoryRepository) List(_ context.Context, walletID string, q record.PageQuery) ([]Withdraw, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Withdraw{}
	for _, w := range r.storage {
		if w.WalletID != walletID || !q.InWindow(w.Created.Time) {
			continue
		}
		matched = append(matched, w)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Created.Before(matched[j].Created.Time)
	})

	return page(matched, q), nil
}

func (r *memoryRepository) SetStatus(_ context.Context, walletID, id string, target Status) (Withdraw, error) {
	if err := checkTarget(target); err != nil {
		return Withdraw{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.storage[id]
	if !ok || w.WalletID != walletID {
		return Withdraw{}, record.ErrNotFound
	}

	if r.strict && !CanTransition(w.Status, target) {
		return Withdraw{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, w.Status, target)
	}

	w.Status = target
	if target == StatusCanceled {
		w.TimeCanceled = record.NullTime{Time: time.Now().UTC().Truncate(time.Second), Valid: true}
	}
	r.storage[id] = w
	return w, nil
}

func page(ws []Withdraw, q record.PageQuery) []Withdraw {
	offset := q.Offset()
	if offset >= int64(len(ws)) {
		return []Withdraw{}
	}
	ws = ws[offset:]
	if q.Limit() < int64(len(ws)) {
		ws = ws[:q.Limit()]
	}
	return ws
}
