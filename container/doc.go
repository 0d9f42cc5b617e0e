// Package container provides a small IoC (Inversion of Control) container
// with constructor injection for Go.
//
// # Overview
//
// The container is a registry mapping a service type to a constructor
// function (or a pre-built instance) plus a lifetime policy. Resolving a
// type runs its constructor, resolving each constructor parameter from the
// container recursively, so one Resolve call returns a fully wired object
// graph.
//
// There is no runtime type scanning: every binding carries an explicit
// constructor, and resolution is driven by the constructor's parameter
// types. The container never returns nil for a missing binding — it fails
// with a typed error, because an unregistered type is a configuration bug.
//
// # Container lifecycle
//
//  1. Create: c := container.New()
//  2. Register bindings (directly or via ServiceProviders)
//  3. Optionally registry.Boot() and c.Validate()
//  4. Resolve the root object(s) and run the program
//
// The registry lives for the lifetime of the process; bindings are never
// individually removed.
//
// # Bindings
//
//	// Transient — a fresh instance (and dependency graph) every Resolve
//	container.Bind[UserRepository](c, NewInMemoryUserRepository)
//
//	// Singleton — constructed once, on first Resolve, then shared
//	container.Singleton[*UserService](c, NewUserService)
//
//	// Pre-built value — returned as-is on every Resolve
//	container.Instance[*config.Config](c, cfg)
//
// Constructors have the shape func(deps...) T or func(deps...) (T, error).
// Registering the same service type twice overwrites the earlier binding
// (last write wins) and drops any singleton instance materialized under it.
//
// # Resolving
//
//	// Typed (preferred — no assertion at the call site)
//	svc, err := container.Resolve[*UserService](c)
//
//	// Panicking form for composition roots
//	svc := container.MustResolve[*UserService](c)
//
//	// Untyped, keyed by reflect.Type
//	raw, err := c.Get(reflect.TypeOf((*UserService)(nil)))
//
// A dependency cycle (A needs B, B needs A) is detected per resolution call
// and fails fast with *CircularDependencyError carrying the full path.
//
// # Service providers
//
//	type AppProvider struct{ container.BaseProvider }
//
//	func (p *AppProvider) Register(c *container.Container) error {
//	    return container.Singleton[*Mailer](c, NewSMTPMailer)
//	}
//
//	registry := container.NewProviderRegistry(c)
//	_ = registry.Register(&AppProvider{})
//	_ = registry.Boot()
//
// Providers whose IsDeferred returns true are loaded lazily, on the first
// resolution of one of their Provides() types.
//
// # Validation
//
// Validate walks the registered graph without constructing anything and
// reports missing dependencies and static cycles, all combined into one
// error:
//
//	if err := c.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// All operations are synchronous and safe for concurrent use. Singletons
// guarantee that at most one instance survives a racy first resolution; see
// Container for the exact semantics.
package container
