package echo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_CleanupLoopStopsOnCancel(t *testing.T) {
	t.Parallel()

	rl := newRateLimiter(10, 20)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		rl.cleanupLoop(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after context cancellation")
	}
	assert.Empty(t, rl.limiters)
}
