package registry

import (
	"fmt"
	"sync"

	"github.com/translatekit/translatekit/pkg/provider"
)

// DefaultGroup is the entry-point group concrete providers announce
// themselves under.
const DefaultGroup = "translatekit.providers"

// LoadFunc resolves an entry point to its provider driver.
type LoadFunc func() (provider.Driver, error)

type entryPoint struct {
	group string
	name  string
	load  LoadFunc
}

// The entry-point index is process-wide, mirroring how packaging metadata is
// global to a process: provider packages append to it from init, applications
// scan it with Discover.
var (
	epMu        sync.RWMutex
	entryPoints []entryPoint
)

// AddEntryPoint declares a provider entry point under the given group.
// Provider packages call this from init so that a blank import is enough to
// make the provider discoverable.
func AddEntryPoint(group, name string, load LoadFunc) {
	epMu.Lock()
	defer epMu.Unlock()
	entryPoints = append(entryPoints, entryPoint{group: group, name: name, load: load})
}

func entryPointsFor(group string) []entryPoint {
	epMu.RLock()
	defer epMu.RUnlock()

	var eps []entryPoint
	for _, ep := range entryPoints {
		if ep.group == group {
			eps = append(eps, ep)
		}
	}
	return eps
}

// DiscoverOption configures a Discover call.
type DiscoverOption func(*discoverOptions)

type discoverOptions struct {
	failFast bool
}

// WithFailFast makes Discover abort on the first failing entry point instead
// of logging and moving on.
func WithFailFast() DiscoverOption {
	return func(o *discoverOptions) { o.failFast = true }
}

// Discover scans the entry-point index for the given group, loads each
// declared driver and registers it. Entries are independent: a failing entry
// (load error, invalid driver, registration conflict) is logged and skipped
// unless WithFailFast is set, in which case the first failure aborts the scan
// and is returned alongside the names registered so far.
//
// Discovery is idempotent: an entry whose driver this registry already
// registered is reported as discovered again rather than failing as a
// duplicate, so repeated scans return the same names and leave the store
// unchanged.
func (r *Registry) Discover(group string, opts ...DiscoverOption) ([]string, error) {
	var options discoverOptions
	for _, opt := range opts {
		opt(&options)
	}

	var registered []string
	for _, ep := range entryPointsFor(group) {
		key := ep.group + "/" + ep.name

		d, err := ep.load()
		if err == nil {
			err = d.Validate()
		}
		if err != nil {
			err = fmt.Errorf("entry point %q: %w", ep.name, err)
			r.log.Error("failed to load provider entry point", "group", group, "entry", ep.name, "error", err)
			if options.failFast {
				return registered, err
			}
			continue
		}

		if r.originOf(d.Name) == key {
			// Already registered by this same entry on a previous scan.
			r.log.Debug("provider already discovered", "group", group, "provider", d.Name)
			registered = append(registered, d.Name)
			continue
		}

		if err := r.Register(d.Name, d); err != nil {
			err = fmt.Errorf("entry point %q: %w", ep.name, err)
			r.log.Error("failed to register discovered provider", "group", group, "provider", d.Name, "error", err)
			if options.failFast {
				return registered, err
			}
			continue
		}

		r.setOrigin(d.Name, key)
		registered = append(registered, d.Name)
	}

	return registered, nil
}

func (r *Registry) originOf(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.origins[name]
}

func (r *Registry) setOrigin(name, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.origins[name] = key
}
