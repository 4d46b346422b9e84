// Package translatekit is a provider-registry framework for pluggable
// machine-translation backends.
//
// The framework itself performs no translation. It defines the contract a
// translation provider must satisfy (pkg/provider), a process-wide registry
// that stores and discovers provider drivers (pkg/registry), and small
// supporting packages for language-code validation (pkg/langcode), retry
// pacing (pkg/backoff), deferred results (pkg/async) and logging setup
// (pkg/logger).
//
// Concrete providers live in their own modules. A provider package exposes a
// provider.Driver describing its capabilities and a factory that builds a
// provider.Translator from a provider.Config, then announces itself to the
// framework from init:
//
//	func init() {
//		registry.AddEntryPoint(registry.DefaultGroup, "acme", func() (provider.Driver, error) {
//			return Driver, nil
//		})
//	}
//
// An application blank-imports the provider packages it wants, runs discovery
// once at startup, and resolves drivers by name afterwards:
//
//	import _ "example.com/acme-translator"
//
//	names, _ := registry.Discover(registry.DefaultGroup)
//	drv, err := registry.Get("acme")
//	p, err := drv.New(cfg)
//	resp, err := p.Translate(ctx, "hello", "en", "fr")
//
// The registry is read-mostly after startup: registration is guarded by a
// mutex, lookups are memoized, and all provider instances are owned by the
// caller. The registry holds driver descriptors only, never instances.
package translatekit
