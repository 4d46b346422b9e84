package provider

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Base carries the state and helpers shared by provider implementations:
// the validated configuration, response construction and request pacing.
// Concrete providers embed a *Base and implement Translate themselves.
type Base struct {
	driver Driver
	config Config

	// The pacing mutex is a one-slot channel created on first use so that
	// waiting on it can be abandoned when the caller's context is cancelled.
	limitOnce   sync.Once
	limit       chan struct{}
	lastRequest time.Time // guarded by limit
}

// NewBase validates the configuration against the driver's requirements and
// returns the shared provider state. Construction fails when the driver has
// no name, the API key is missing, the region is missing for a driver that
// requires one, or the User-Agent override is half-set.
func NewBase(d Driver, cfg Config) (*Base, error) {
	if d.Name == "" {
		return nil, ErrMissingName
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(d.RequiresRegion); err != nil {
		return nil, err
	}

	return &Base{driver: d, config: cfg}, nil
}

// Driver returns the descriptor this instance was built from.
func (b *Base) Driver() Driver { return b.driver }

// Config returns the configuration the instance holds for its lifetime.
func (b *Base) Config() Config { return b.config }

// Name returns the provider's registry name.
func (b *Base) Name() string { return b.driver.Name }

// ResponseOption customizes a response built with NewResponse.
type ResponseOption func(*Response)

// WithError marks the response as failed with the given human-readable
// message.
func WithError(msg string) ResponseOption {
	return func(r *Response) { r.Error = msg }
}

// WithMetadata attaches provider-specific extras to the response.
func WithMetadata(md Metadata) ResponseOption {
	return func(r *Response) { r.Metadata = md }
}

// NewResponse builds a standardized response for this provider. Status is
// derived purely from error presence: failed iff WithError was applied.
// Every response gets a fresh request ID and a UTC timestamp.
func (b *Base) NewResponse(translatedText, sourceLang, targetLang string, charCount int, opts ...ResponseOption) Response {
	resp := Response{
		TranslatedText: translatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		Provider:       b.driver.Name,
		CharCount:      charCount,
		Status:         StatusSuccess,
		RequestID:      uuid.New().String(),
		Timestamp:      time.Now().UTC(),
		Metadata:       Metadata{},
	}

	for _, opt := range opts {
		opt(&resp)
	}
	if resp.Error != "" {
		resp.Status = StatusFailed
	}

	return resp
}

// Throttle enforces the configured rate limit before an upstream request.
// With no rate limit configured it returns immediately. Otherwise it holds
// the instance's pacing mutex across the wait so concurrent callers cannot
// race on the last-request timestamp, and sleeps out whatever remains of the
// 1/RateLimit interval since the previous call. The wait is abandoned with
// the context's error if ctx is cancelled first.
func (b *Base) Throttle(ctx context.Context) error {
	if b.config.RateLimit <= 0 {
		return nil
	}

	b.limitOnce.Do(func() {
		b.limit = make(chan struct{}, 1)
	})

	select {
	case b.limit <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-b.limit }()

	if !b.lastRequest.IsZero() {
		interval := time.Second / time.Duration(b.config.RateLimit)
		if elapsed := time.Since(b.lastRequest); elapsed < interval {
			wait := interval - elapsed
			slog.Debug("rate limiting provider request",
				"provider", b.driver.Name,
				"wait", wait,
			)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	b.lastRequest = time.Now()
	return nil
}
