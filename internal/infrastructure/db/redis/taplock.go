package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockTTL        = 3 * time.Second
	lockWait       = 500 * time.Millisecond
	lockRetryDelay = 25 * time.Millisecond
)

// TapLock provides an advisory per-identifier lock backed by Redis.
// Key format: taplock:<uid>
//
// The lock narrows the window in which two near-simultaneous taps for the
// same badge read the same ledger snapshot. It is advisory: waiting out
// lockWait proceeds unguarded rather than failing the tap, and the TTL
// bounds how long a crashed holder can block a badge.
type TapLock struct {
	client *redis.Client
}

// NewTapLock creates a TapLock wrapping the given Redis client.
func NewTapLock(client *redis.Client) *TapLock {
	return &TapLock{client: client}
}

// Acquire takes the identifier's lock, retrying until lockWait elapses. The
// returned func releases the lock and is never nil on a nil error.
func (l *TapLock) Acquire(ctx context.Context, uid string) (func(), error) {
	key := l.key(uid)
	deadline := time.Now().Add(lockWait)

	for {
		ok, err := l.client.SetNX(ctx, key, "1", lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire tap lock: %w", err)
		}
		if ok {
			return func() {
				// Release must survive request cancellation.
				l.client.Del(context.WithoutCancel(ctx), key)
			}, nil
		}
		if time.Now().After(deadline) {
			// Contended past the wait window. Proceed unguarded; the TTL
			// will clear the holder.
			return func() {}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
}

func (l *TapLock) key(uid string) string {
	return fmt.Sprintf("taplock:%s", uid)
}
