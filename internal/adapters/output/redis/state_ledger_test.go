package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*RedisStateLedger, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	ledger, err := NewRedisStateLedger(context.Background(), "redis://"+mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })

	return ledger, mr
}

// TestNewRedisStateLedgerInvalidURL tests that a malformed url is rejected before dialing
func TestNewRedisStateLedgerInvalidURL(t *testing.T) {
	ledger, err := NewRedisStateLedger(context.Background(), "http://localhost:6379", "")
	if err == nil {
		t.Fatal("expected error for non-redis scheme")
	}
	if ledger != nil {
		t.Error("expected ledger to be nil")
	}
}

// TestNewRedisStateLedgerUnreachable tests that a failed ping is reported
func TestNewRedisStateLedgerUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ledger, err := NewRedisStateLedger(ctx, "redis://127.0.0.1:1/0", "")
	if err == nil {
		ledger.Close()
		t.Fatal("expected ping error for closed port")
	}
}

// TestKeyPrefix tests that states are namespaced
func TestKeyPrefix(t *testing.T) {
	ledger := &RedisStateLedger{prefix: defaultPrefix}

	if got := ledger.key("abc"); got != "getcooked:oauth_state:abc" {
		t.Errorf("unexpected key: %s", got)
	}
}

// TestConsumeRejectsReplay tests that a state is redeemable once per ttl window
func TestConsumeRejectsReplay(t *testing.T) {
	ledger, mr := newTestLedger(t)
	ctx := context.Background()
	ttl := 10 * time.Minute

	fresh, err := ledger.Consume(ctx, "state-1", ttl)
	require.NoError(t, err)
	assert.True(t, fresh, "first redemption must win")

	fresh, err = ledger.Consume(ctx, "state-1", ttl)
	require.NoError(t, err)
	assert.False(t, fresh, "replayed state must be rejected")

	fresh, err = ledger.Consume(ctx, "state-2", ttl)
	require.NoError(t, err)
	assert.True(t, fresh, "a different state is independent")

	assert.True(t, mr.Exists("getcooked:oauth_state:state-1"))
	assert.Equal(t, ttl, mr.TTL("getcooked:oauth_state:state-1"))

	mr.FastForward(ttl + time.Second)

	fresh, err = ledger.Consume(ctx, "state-1", ttl)
	require.NoError(t, err)
	assert.True(t, fresh, "entry is forgotten after ttl")
}

// TestConsumeReportsConnectionLoss tests that a dead server surfaces as an error
func TestConsumeReportsConnectionLoss(t *testing.T) {
	ledger, mr := newTestLedger(t)
	mr.Close()

	fresh, err := ledger.Consume(context.Background(), "state-1", time.Minute)
	assert.Error(t, err)
	assert.False(t, fresh)
}
