package registry

import (
	"context"

	"github.com/translatekit/translatekit/pkg/provider"
)

// Default is the shared process-wide registry. It is populated once at
// startup (typically via Discover) and read-mostly afterwards.
var Default = New()

// Register adds a driver to the Default registry.
func Register(name string, d provider.Driver) error {
	return Default.Register(name, d)
}

// Get looks up a driver in the Default registry.
func Get(name string) (provider.Driver, error) {
	return Default.Get(name)
}

// List returns the sorted provider names of the Default registry.
func List() []string {
	return Default.List()
}

// Discover scans the entry-point index into the Default registry.
func Discover(group string, opts ...DiscoverOption) ([]string, error) {
	return Default.Discover(group, opts...)
}

// HealthCheck probes a provider registered in the Default registry.
func HealthCheck(ctx context.Context, name string, cfg provider.Config, opts ...HealthCheckOption) (bool, error) {
	return Default.HealthCheck(ctx, name, cfg, opts...)
}

// Clear resets the Default registry. Test helper, not part of the normal
// lifecycle.
func Clear() {
	Default.Clear()
}
