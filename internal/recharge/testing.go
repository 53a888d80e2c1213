package recharge

import (
	"time"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

// SeedCreated is a test helper that rewrites a record's creation time when
// using the in-memory repository.
func SeedCreated(r Repository, id string, created time.Time) {
	if mem, ok := r.(*memoryRepository); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		rec := mem.storage[id]
		rec.Created = record.NewTime(created)
		mem.storage[id] = rec
	}
}
