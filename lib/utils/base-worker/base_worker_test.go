package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run(`runs until context is cancelled`, func(t *testing.T) {
		var calls atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			NewInstance("test", 0, 5*time.Millisecond).Run(ctx, func(ctx context.Context) {
				calls.Add(1)
			})
		}()
		require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop")
		}
	})

	t.Run(`panic does not stop the worker`, func(t *testing.T) {
		var calls atomic.Int32
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go NewInstance("test", 0, 5*time.Millisecond).Run(ctx, func(ctx context.Context) {
			if calls.Add(1) == 1 {
				panic("boom")
			}
		})
		require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	})
}
