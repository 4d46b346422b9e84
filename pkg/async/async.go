package async

import (
	"context"
	"time"
)

// Future is the eventual result of a computation started with Run.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Await blocks until the computation finishes and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the computation finishes or the timeout
// elapses, in which case it returns ErrTimeout. The computation itself keeps
// running; a later Await still observes its real outcome.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run starts fn on its own goroutine and returns a Future for its result.
// If ctx is already cancelled the Future completes immediately with the
// context error and fn is never invoked.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// WaitAll waits for every future and returns their results in argument order.
// The first error encountered (in order) is returned alongside the partially
// populated results.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
