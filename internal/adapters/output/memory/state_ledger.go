package memory

import (
	"context"
	"sync"
	"time"

	"getcooked/internal/ports/output"
)

// Compile-time check to ensure MemoryStateLedger implements StateLedger interface
var _ output.StateLedger = (*MemoryStateLedger)(nil)

// MemoryStateLedger struct - Output adapter for in-process nonce bookkeeping.
// Uses sync.Map for thread-safe concurrent access; entries expire lazily.
// Only suitable for a single instance; use the redis ledger behind a load balancer.
type MemoryStateLedger struct {
	states sync.Map
	now    func() time.Time
}

// NewMemoryStateLedger creates a new in-memory state ledger
func NewMemoryStateLedger() *MemoryStateLedger {
	return &MemoryStateLedger{now: time.Now}
}

// Consume records state as redeemed until ttl elapses.
// Returns false if an unexpired record already exists.
func (m *MemoryStateLedger) Consume(_ context.Context, state string, ttl time.Duration) (bool, error) {
	expiresAt := m.now().Add(ttl)

	for {
		value, loaded := m.states.LoadOrStore(state, expiresAt)
		if !loaded {
			return true, nil
		}

		existing, ok := value.(time.Time)
		if ok && m.now().Before(existing) {
			return false, nil
		}

		// Lazy cleanup: replace the expired or malformed record, losing the race means someone else consumed it
		if m.states.CompareAndSwap(state, value, expiresAt) {
			return true, nil
		}
	}
}

// Sweep deletes expired records and returns how many were removed
func (m *MemoryStateLedger) Sweep() int {
	removed := 0
	now := m.now()
	m.states.Range(func(key, value any) bool {
		if expiresAt, ok := value.(time.Time); !ok || !now.Before(expiresAt) {
			m.states.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Close is a no-op for the in-memory ledger
func (m *MemoryStateLedger) Close() error {
	return nil
}
