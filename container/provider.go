package container

import (
	"reflect"
	"sync"

	"go.uber.org/multierr"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related bindings so a composition root can be
// assembled from self-contained units.
//
// Register must only bind services; resolving other bindings there is
// unsafe because registration order between providers is unspecified.
// Boot runs after ALL providers have registered, so it may resolve freely.
//
//	type LoggingProvider struct{ container.BaseProvider }
//
//	func (p *LoggingProvider) Register(c *container.Container) error {
//	    return container.Singleton[*zap.Logger](c, zap.NewProduction)
//	}
//
//	func (p *LoggingProvider) Boot(c *container.Container) error {
//	    container.MustResolve[*zap.Logger](c).Info("booted")
//	    return nil
//	}
type ServiceProvider interface {
	// Register binds services into the container.
	Register(c *Container) error

	// Boot is called after all providers are registered.
	Boot(c *Container) error

	// Provides returns the service types this provider registers.
	// Only consulted for deferred providers; eager providers may return nil.
	Provides() []reflect.Type

	// IsDeferred returns true if the provider should be loaded lazily, on
	// the first resolution of one of its Provides() types.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with no-op implementations of Boot,
// Provides, and IsDeferred. Embed it and override only what you need.
type BaseProvider struct{}

func (BaseProvider) Boot(*Container) error    { return nil }
func (BaseProvider) Provides() []reflect.Type { return nil }
func (BaseProvider) IsDeferred() bool         { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred providers that only register once one of their types is
// first resolved.
type ProviderRegistry struct {
	mu         sync.Mutex
	app        *Container
	eager      []ServiceProvider
	deferred   map[reflect.Type]ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app and installs the hook
// that loads deferred providers during resolution.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	r := &ProviderRegistry{
		app:        app,
		deferred:   make(map[reflect.Type]ServiceProvider),
		registered: make(map[ServiceProvider]bool),
	}
	app.setMissingHook(r.loadDeferred)
	return r
}

// Register adds a provider. Eager providers have Register called
// immediately; deferred providers wait for the first resolution of one of
// their Provides() types. Registering the same provider twice is a no-op.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	r.mu.Lock()
	if r.registered[provider] {
		r.mu.Unlock()
		return nil
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		for _, service := range provider.Provides() {
			r.deferred[service] = provider
		}
		r.mu.Unlock()
		return nil
	}

	r.eager = append(r.eager, provider)
	booted := r.booted
	r.mu.Unlock()

	if err := provider.Register(r.app); err != nil {
		return err
	}
	// Registration after Boot() still gets its boot phase.
	if booted {
		return provider.Boot(r.app)
	}
	return nil
}

// loadDeferred is the container's missing-binding hook: if a deferred
// provider declared the requested type, register (and, when already booted,
// boot) it now.
func (r *ProviderRegistry) loadDeferred(service reflect.Type) error {
	r.mu.Lock()
	provider, ok := r.deferred[service]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	for _, t := range provider.Provides() {
		delete(r.deferred, t)
	}
	booted := r.booted
	r.mu.Unlock()

	if err := provider.Register(r.app); err != nil {
		return err
	}
	if booted {
		return provider.Boot(r.app)
	}
	return nil
}

// Boot calls Boot on all eagerly registered providers, in registration
// order, and reports every boot failure combined into one error. Must be
// called after ALL providers have been registered; repeated calls are
// no-ops.
func (r *ProviderRegistry) Boot() error {
	r.mu.Lock()
	if r.booted {
		r.mu.Unlock()
		return nil
	}
	r.booted = true
	providers := make([]ServiceProvider, len(r.eager))
	copy(providers, r.eager)
	r.mu.Unlock()

	var err error
	for _, provider := range providers {
		err = multierr.Append(err, provider.Boot(r.app))
	}
	return err
}

// Booted returns true once Boot has been called.
func (r *ProviderRegistry) Booted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.booted
}

// Providers returns all eagerly registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ServiceProvider, len(r.eager))
	copy(out, r.eager)
	return out
}
