package backoff

import (
	"math"
	"time"
)

// Strategy calculates the delay before a retry attempt.
// Implementations must be safe for concurrent use.
type Strategy interface {
	// NextInterval returns the delay to apply after the given attempt.
	// Attempt starts at 1 for the first failed attempt.
	NextInterval(attempt int) time.Duration
}

// Exponential doubles the delay on every attempt, clamped to [Min, Max].
// The schedule is Multiplier * 2^(attempt-1) seconds, matching the common
// "wait exponential" policy of retry wrappers.
type Exponential struct {
	// Multiplier scales the exponential curve, in seconds. Zero means 1.
	Multiplier float64
	// Min and Max clamp the computed delay. Zero values leave the
	// corresponding bound open.
	Min time.Duration
	Max time.Duration
}

func (e Exponential) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}

	interval := time.Duration(multiplier * math.Pow(2, float64(attempt-1)) * float64(time.Second))

	if e.Min > 0 && interval < e.Min {
		interval = e.Min
	}
	if e.Max > 0 && interval > e.Max {
		interval = e.Max
	}

	return interval
}

// Fixed waits the same interval between every attempt. Useful where the
// schedule must be deterministic, tests in particular.
type Fixed struct {
	Interval time.Duration
}

func (f Fixed) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Interval
}
