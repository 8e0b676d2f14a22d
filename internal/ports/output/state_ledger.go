package output

import (
	"context"
	"time"
)

// StateLedger interface - Output port
// Records OAuth nonces that have already been redeemed so a callback cannot be replayed.
// Implementations must be safe for concurrent use.
type StateLedger interface {
	// Consume marks state as used for ttl. It returns false when the state was
	// already consumed and has not yet expired.
	// Returns an error only if the ledger cannot be reached.
	Consume(ctx context.Context, state string, ttl time.Duration) (bool, error)

	// Close releases any connection held by the ledger
	Close() error
}
