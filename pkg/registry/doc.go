// Package registry stores and discovers translation-provider drivers.
//
// The registry maps unique provider names to provider.Driver descriptors.
// Registration is append-only per name and safe under concurrent callers;
// lookups are memoized so the hot path is lock-free once a name has been
// resolved. Drivers, never instances, live in the registry: callers build
// instances themselves through the driver's factory and own them fully.
//
// # Discovery
//
// Provider packages make themselves discoverable by declaring an entry point
// from init:
//
//	func init() {
//		registry.AddEntryPoint(registry.DefaultGroup, "acme", func() (provider.Driver, error) {
//			return Driver, nil
//		})
//	}
//
// At startup the application blank-imports its providers and scans the group:
//
//	names, err := registry.Discover(registry.DefaultGroup)
//
// Entries fail independently: a broken entry point is logged and skipped so
// one bad provider cannot take down the scan. Pass WithFailFast to get the
// first failure back instead. Repeated scans are idempotent.
//
// # Health checks
//
// HealthCheck exercises a provider's translate path against a fixed test
// input and reports a boolean verdict. Raised errors are retried with
// exponential backoff before propagating; a translation that cleanly reports
// failure resolves the check to false with no retry.
//
// Most applications use the package-level functions, which operate on the
// shared Default registry. Separate Registry instances can be created with
// New for tests or embedded use.
package registry
