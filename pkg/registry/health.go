package registry

import (
	"context"
	"time"

	"github.com/translatekit/translatekit/pkg/backoff"
	"github.com/translatekit/translatekit/pkg/provider"
)

const (
	healthCheckAttempts = 3
	healthCheckText     = "test"

	// The probe exercises a fixed, widely supported language pair.
	healthSourceLang = "en"
	healthTargetLang = "fr"
)

// HealthCheckOption configures a HealthCheck call.
type HealthCheckOption func(*healthCheckOptions)

type healthCheckOptions struct {
	testText string
	strategy backoff.Strategy
}

// WithTestText overrides the text sent through the probe translation.
func WithTestText(text string) HealthCheckOption {
	return func(o *healthCheckOptions) {
		if text != "" {
			o.testText = text
		}
	}
}

// WithBackoff overrides the retry pacing between failed attempts.
func WithBackoff(s backoff.Strategy) HealthCheckOption {
	return func(o *healthCheckOptions) {
		if s != nil {
			o.strategy = s
		}
	}
}

// HealthCheck probes whether the named provider is operational: it builds an
// instance with the given config, pushes a test text through the async
// translate path when the driver declares one (sync otherwise), and reports
// true iff the response status is success.
//
// The two failure channels behave differently. A response with a failed
// status is a deterministic negative result: the check resolves to false
// immediately, no retry. A raised error is treated as transient: the attempt
// is retried up to 3 times with exponential backoff (multiplier 1, 4s..10s),
// and if every attempt errors the last error propagates to the caller.
func (r *Registry) HealthCheck(ctx context.Context, name string, cfg provider.Config, opts ...HealthCheckOption) (bool, error) {
	options := healthCheckOptions{
		testText: healthCheckText,
		strategy: backoff.Exponential{Multiplier: 1, Min: 4 * time.Second, Max: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(&options)
	}

	var lastErr error
	for attempt := 1; attempt <= healthCheckAttempts; attempt++ {
		r.log.Debug("attempting provider health check", "provider", name, "attempt", attempt)

		healthy, err := r.healthCheckOnce(ctx, name, cfg, options.testText)
		if err == nil {
			return healthy, nil
		}
		lastErr = err
		r.log.Error("provider health check failed", "provider", name, "attempt", attempt, "error", err)

		if attempt == healthCheckAttempts {
			break
		}
		select {
		case <-time.After(options.strategy.NextInterval(attempt)):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	return false, lastErr
}

func (r *Registry) healthCheckOnce(ctx context.Context, name string, cfg provider.Config, text string) (bool, error) {
	d, err := r.Get(name)
	if err != nil {
		return false, err
	}

	t, err := d.New(cfg)
	if err != nil {
		return false, err
	}

	var resp provider.Response
	if d.SupportsAsync {
		future, err := provider.TranslateAsync(ctx, d, t, text, healthSourceLang, healthTargetLang)
		if err != nil {
			return false, err
		}
		if resp, err = future.Await(); err != nil {
			return false, err
		}
	} else {
		if resp, err = t.Translate(ctx, text, healthSourceLang, healthTargetLang); err != nil {
			return false, err
		}
	}

	return resp.OK(), nil
}
