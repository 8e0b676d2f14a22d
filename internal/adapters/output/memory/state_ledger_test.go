package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const testTTL = 10 * time.Minute

// TestConsumeFirstUseSucceeds tests that a fresh state is accepted once
func TestConsumeFirstUseSucceeds(t *testing.T) {
	ledger := NewMemoryStateLedger()

	fresh, err := ledger.Consume(context.Background(), "nonce-1", testTTL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !fresh {
		t.Error("expected first consume to succeed")
	}
}

// TestConsumeReplayRejected tests that the same state cannot be consumed twice
func TestConsumeReplayRejected(t *testing.T) {
	ledger := NewMemoryStateLedger()

	ledger.Consume(context.Background(), "nonce-1", testTTL)
	fresh, err := ledger.Consume(context.Background(), "nonce-1", testTTL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fresh {
		t.Error("expected replay to be rejected")
	}

	// A different state is independent
	fresh, _ = ledger.Consume(context.Background(), "nonce-2", testTTL)
	if !fresh {
		t.Error("expected a different state to be accepted")
	}
}

// TestConsumeAfterExpiry tests lazy cleanup of expired records
func TestConsumeAfterExpiry(t *testing.T) {
	current := time.Now()
	ledger := NewMemoryStateLedger()
	ledger.now = func() time.Time { return current }

	ledger.Consume(context.Background(), "nonce-1", time.Minute)

	current = current.Add(2 * time.Minute)

	fresh, _ := ledger.Consume(context.Background(), "nonce-1", time.Minute)
	if !fresh {
		t.Error("expected expired record to be replaced")
	}
}

// TestConsumeMalformedValue tests that a malformed record is replaced
func TestConsumeMalformedValue(t *testing.T) {
	ledger := NewMemoryStateLedger()
	ledger.states.Store("nonce-1", "not a time")

	fresh, _ := ledger.Consume(context.Background(), "nonce-1", testTTL)
	if !fresh {
		t.Error("expected malformed record to be replaced")
	}
}

// TestConsumeConcurrent tests that exactly one of many concurrent consumers wins
func TestConsumeConcurrent(t *testing.T) {
	ledger := NewMemoryStateLedger()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if fresh, _ := ledger.Consume(context.Background(), "shared", testTTL); fresh {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Errorf("expected exactly 1 winner, got %d", wins.Load())
	}
}

// TestSweepRemovesExpired tests that Sweep only drops expired records
func TestSweepRemovesExpired(t *testing.T) {
	current := time.Now()
	ledger := NewMemoryStateLedger()
	ledger.now = func() time.Time { return current }

	ledger.Consume(context.Background(), "short", time.Minute)
	ledger.Consume(context.Background(), "long", time.Hour)

	current = current.Add(5 * time.Minute)

	if removed := ledger.Sweep(); removed != 1 {
		t.Errorf("expected 1 removed record, got %d", removed)
	}
	if _, ok := ledger.states.Load("long"); !ok {
		t.Error("expected unexpired record to survive")
	}
	if err := ledger.Close(); err != nil {
		t.Errorf("expected no error on close, got %v", err)
	}
}
