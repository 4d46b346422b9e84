package provider

import (
	"context"

	"github.com/translatekit/translatekit/pkg/async"
)

// DefaultMaxChunkSize is the per-request character limit assumed for drivers
// that do not declare their own.
const DefaultMaxChunkSize = 5000

// Translator is the contract every translation provider must satisfy.
//
// Translate reports upstream business failures row-shaped: a Response with
// StatusFailed and a populated Error field. The error return is reserved for
// raised failures (transport faults, programming errors) and is what the
// registry's health check treats as retryable.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (Response, error)
}

// AsyncTranslator is implemented by translators with a native asynchronous
// translate path. Translators without it are wrapped by TranslateAsync, which
// runs the synchronous path on its own goroutine.
type AsyncTranslator interface {
	TranslateAsync(ctx context.Context, text, sourceLang, targetLang string) *async.Future[Response]
}

// BulkTranslator is implemented by translators that batch multiple texts in
// one upstream call. Implementations must return exactly one response per
// input text, in input order.
type BulkTranslator interface {
	BulkTranslate(ctx context.Context, texts []string, sourceLang, targetLang string) ([]Response, error)
}

// Factory constructs a translator instance from a configuration. The registry
// stores factories, never instances; every caller owns the instances it
// creates.
type Factory func(Config) (Translator, error)

// Driver describes a provider implementation to the registry: its identity,
// its capability flags and the factory that builds instances.
type Driver struct {
	// Name uniquely identifies the provider in the registry. Required.
	Name string

	// RequiresRegion makes Config.Region mandatory at construction.
	RequiresRegion bool

	// SupportsAsync declares a native async translate path. A driver that
	// sets this without implementing AsyncTranslator fails loudly on the
	// async path instead of silently degrading.
	SupportsAsync bool

	// MaxChunkSize is the largest text the upstream accepts per request.
	// Zero means DefaultMaxChunkSize.
	MaxChunkSize int

	// MinFrameworkVersion optionally names the oldest framework release the
	// driver is compatible with, e.g. "0.2.0".
	MinFrameworkVersion string

	// New builds a translator instance bound to the given configuration.
	New Factory
}

// Validate checks that the driver satisfies the provider contract.
func (d Driver) Validate() error {
	if d.Name == "" {
		return ErrMissingName
	}
	if d.New == nil {
		return ErrNilFactory
	}
	return nil
}

// ChunkSize returns the driver's chunk limit with the default applied.
func (d Driver) ChunkSize() int {
	if d.MaxChunkSize <= 0 {
		return DefaultMaxChunkSize
	}
	return d.MaxChunkSize
}
