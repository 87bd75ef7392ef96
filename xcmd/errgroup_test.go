package xcmd

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	t.Run("success with no errors", func(t *testing.T) {
		group, ctx := ErrGroup(context.Background())

		executed := make([]bool, 3)
		for i := range executed {
			group.Go(func(_ context.Context) error {
				executed[i] = true
				return nil
			})
		}

		require.NoError(t, group.Wait())
		assert.Equal(t, []bool{true, true, true}, executed)
		assert.Error(t, ctx.Err())
	})

	t.Run("first error cancels context", func(t *testing.T) {
		group, ctx := ErrGroup(context.Background())

		expectedErr := errors.New("test error")
		started := make(chan struct{})

		group.Go(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return nil
		})

		group.Go(func(_ context.Context) error {
			<-started
			return expectedErr
		})

		err := group.Wait()
		assert.Equal(t, expectedErr, err)
		assert.Equal(t, expectedErr, context.Cause(ctx))
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		group, _ := ErrGroup(parent)

		group.Go(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		cancel()
		assert.ErrorIs(t, group.Wait(), context.Canceled)
	})

	t.Run("wait with no goroutines", func(t *testing.T) {
		group, ctx := ErrGroup(context.Background())
		require.NoError(t, group.Wait())
		assert.Error(t, ctx.Err())
	})
}

func TestGroupSetLimit(t *testing.T) {
	t.Run("bounds concurrency", func(t *testing.T) {
		group, _ := ErrGroup(context.Background())
		group.SetLimit(2)

		var running, peak atomic.Int32
		for range 8 {
			group.Go(func(_ context.Context) error {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				running.Add(-1)
				return nil
			})
		}

		require.NoError(t, group.Wait())
		assert.LessOrEqual(t, peak.Load(), int32(2))
		assert.GreaterOrEqual(t, peak.Load(), int32(1))
	})

	t.Run("queued functions skipped after error", func(t *testing.T) {
		group, _ := ErrGroup(context.Background())
		group.SetLimit(1)

		expectedErr := errors.New("stop")
		var calls atomic.Int32

		group.Go(func(_ context.Context) error {
			calls.Add(1)
			return expectedErr
		})

		// Give the failing function time to grab the slot and cancel.
		time.Sleep(20 * time.Millisecond)

		for range 5 {
			group.Go(func(_ context.Context) error {
				calls.Add(1)
				return nil
			})
		}

		assert.Equal(t, expectedErr, group.Wait())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("non-positive limit removes bound", func(t *testing.T) {
		group, _ := ErrGroup(context.Background())
		group.SetLimit(0)

		var calls atomic.Int32
		for range 4 {
			group.Go(func(_ context.Context) error {
				calls.Add(1)
				return nil
			})
		}

		require.NoError(t, group.Wait())
		assert.Equal(t, int32(4), calls.Load())
	})
}
