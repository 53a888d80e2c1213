package withdraw

import (
	"time"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

// SeedStatus is a test helper that forces a record's status when using the
// in-memory repository, bypassing transition checks.
func SeedStatus(r Repository, id string, status Status) {
	if mem, ok := r.(*memoryRepository); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		w := mem.storage[id]
		w.Status = status
		mem.storage[id] = w
	}
}

// SeedCreated is a test helper that rewrites a record's creation time when
// using the in-memory repository.
func SeedCreated(r Repository, id string, created time.Time) {
	if mem, ok := r.(*memoryRepository); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		w := mem.storage[id]
		w.Created = record.NewTime(created)
		mem.storage[id] = w
	}
}
