// Package async provides a small generic Future for running a computation off
// the calling goroutine and collecting its result later.
//
// Run starts the supplied function on its own goroutine and immediately
// returns a *Future. The caller may block with Await, bound the wait with
// AwaitWithTimeout, or poll with IsComplete. WaitAll gathers several futures
// in order, which is how the provider package fans out bulk translations.
//
//	future := async.Run(ctx, func(ctx context.Context) (string, error) {
//		return slowLookup(ctx, key)
//	})
//	// ... other work ...
//	value, err := future.Await()
//
// Futures are context-aware: a context cancelled before the function starts
// completes the future with the context error without running it. No error
// types beyond ErrTimeout are introduced; futures carry whatever error the
// wrapped function returned.
package async
