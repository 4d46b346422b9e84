package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/translatekit/pkg/async"
)

func TestRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns result", func(t *testing.T) {
		t.Parallel()
		future := async.Run(ctx, func(_ context.Context) (int, error) {
			return 42, nil
		})

		got, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("propagates error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("boom")
		future := async.Run(ctx, func(_ context.Context) (int, error) {
			return 0, wantErr
		})

		_, err := future.Await()
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("cancelled context skips execution", func(t *testing.T) {
		t.Parallel()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		ran := false
		future := async.Run(cancelled, func(_ context.Context) (int, error) {
			ran = true
			return 1, nil
		})

		_, err := future.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
	})
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("completes before timeout", func(t *testing.T) {
		t.Parallel()
		future := async.Run(ctx, func(_ context.Context) (string, error) {
			return "done", nil
		})

		got, err := future.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, "done", got)
	})

	t.Run("times out on slow computation", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		future := async.Run(ctx, func(_ context.Context) (string, error) {
			<-release
			return "late", nil
		})

		_, err := future.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)

		// The computation still finishes and Await sees the real result.
		close(release)
		got, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, "late", got)
	})
}

func TestIsComplete(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	future := async.Run(context.Background(), func(_ context.Context) (int, error) {
		<-release
		return 1, nil
	})

	assert.False(t, future.IsComplete())
	close(release)

	_, err := future.Await()
	require.NoError(t, err)
	assert.True(t, future.IsComplete())
}

func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("preserves argument order", func(t *testing.T) {
		t.Parallel()
		futures := make([]*async.Future[int], 5)
		for i := range futures {
			i := i
			futures[i] = async.Run(ctx, func(_ context.Context) (int, error) {
				return i, nil
			})
		}

		results, err := async.WaitAll(futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, results)
	})

	t.Run("reports first error in order", func(t *testing.T) {
		t.Parallel()
		errA := errors.New("a")
		errB := errors.New("b")

		futures := []*async.Future[int]{
			async.Run(ctx, func(_ context.Context) (int, error) { return 1, nil }),
			async.Run(ctx, func(_ context.Context) (int, error) { return 0, errA }),
			async.Run(ctx, func(_ context.Context) (int, error) { return 0, errB }),
		}

		results, err := async.WaitAll(futures...)
		assert.ErrorIs(t, err, errA)
		assert.Len(t, results, 3)
		assert.Equal(t, 1, results[0])
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		results, err := async.WaitAll[int]()
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
