package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/translatekit/translatekit"
	"github.com/translatekit/translatekit/pkg/provider"
)

// Registry is the process-wide store mapping provider names to drivers.
// Mutation is guarded by a mutex; lookups go through a read-through cache so
// hot paths skip the store lock entirely. The registry holds drivers only,
// never provider instances.
type Registry struct {
	log *slog.Logger

	mu      sync.RWMutex
	drivers map[string]provider.Driver
	origins map[string]string // name -> entry-point key for idempotent discovery

	cache sync.Map // name -> provider.Driver, memoized successful lookups
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and discovery events.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates an empty registry. Most applications use the package-level
// Default instance; separate registries exist for tests and embedding.
func New(opts ...Option) *Registry {
	r := &Registry{
		log:     slog.Default(),
		drivers: make(map[string]provider.Driver),
		origins: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a driver under the given name. It fails on an empty name, a
// driver that does not satisfy the provider contract, a duplicate name, or a
// driver requiring a newer framework release. The existence check and the
// insert happen under one lock, so concurrent registrations cannot bypass
// the duplicate check.
func (r *Registry) Register(name string, d provider.Driver) error {
	if name == "" {
		return ErrInvalidName
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("provider %q: %w", name, err)
	}
	if err := checkVersion(name, d.MinFrameworkVersion); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drivers[name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	r.drivers[name] = d

	r.log.Info("registered translation provider", "provider", name)
	return nil
}

// Get returns the driver registered under name. Successful lookups are
// memoized, so repeated calls for the same name bypass the store lock. A
// missing name fails with ErrNotFound and a message enumerating the known
// providers.
func (r *Registry) Get(name string) (provider.Driver, error) {
	if cached, ok := r.cache.Load(name); ok {
		return cached.(provider.Driver), nil
	}

	r.mu.RLock()
	d, ok := r.drivers[name]
	var known []string
	if !ok {
		known = r.namesLocked()
	}
	r.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: %q (known providers: %s)", ErrNotFound, name, strings.Join(known, ", "))
		r.log.Error("provider lookup failed", "provider", name, "error", err)
		return provider.Driver{}, err
	}

	r.cache.Store(name, d)
	return d, nil
}

// List returns an alphabetically sorted snapshot of all registered names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Clear empties the registry and invalidates the lookup cache. It exists for
// test isolation and administrative resets, not the normal lifecycle.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drivers = make(map[string]provider.Driver)
	r.origins = make(map[string]string)
	r.cache.Range(func(key, _ any) bool {
		r.cache.Delete(key)
		return true
	})
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// checkVersion rejects drivers that declare a minimum framework version newer
// than the running release.
func checkVersion(name, minVersion string) error {
	if minVersion == "" {
		return nil
	}

	min := canonicalVersion(minVersion)
	if !semver.IsValid(min) {
		return fmt.Errorf("%w: provider %q declares invalid minimum version %q", ErrIncompatibleVersion, name, minVersion)
	}
	if semver.Compare(canonicalVersion(translatekit.Version), min) < 0 {
		return fmt.Errorf("%w: provider %q requires translatekit>=%s, running %s",
			ErrIncompatibleVersion, name, minVersion, translatekit.Version)
	}
	return nil
}

func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
