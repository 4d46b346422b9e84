// Package backoff provides retry pacing strategies.
//
// A Strategy maps an attempt number to the delay a caller should wait before
// retrying. The package ships an Exponential strategy for operational retries
// and a Fixed strategy for deterministic schedules.
//
//	strategy := backoff.Exponential{Multiplier: 1, Min: 4 * time.Second, Max: 10 * time.Second}
//	for attempt := 1; attempt <= attempts; attempt++ {
//		if err = try(); err == nil {
//			break
//		}
//		time.Sleep(strategy.NextInterval(attempt))
//	}
//
// Strategies are stateless values and safe for concurrent use.
package backoff
