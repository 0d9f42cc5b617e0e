package container

import "reflect"

// The registration and resolution API is exposed as package-level generic
// functions rather than methods because Go does not allow methods to
// introduce their own type parameters.

// typeOf returns the reflect.Type for T, including interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient constructor for T: every resolution of T runs
// ctor again and builds a fresh dependency graph.
//
// ctor must have the shape func(deps...) T or func(deps...) (T, error); each
// parameter is resolved from the container recursively. Registering the same
// type twice overwrites the earlier binding.
//
//	container.Bind[UserRepository](c, NewInMemoryUserRepository)
func Bind[T any](c *Container, ctor any) error {
	return c.bind(typeOf[T](), ctor, LifetimeTransient)
}

// Singleton registers a lazily-created singleton constructor for T: ctor
// runs at most once per surviving instance, on first resolution, and the
// result is shared by all subsequent resolutions.
//
// Re-registering T drops any instance materialized under the previous
// binding, so the next resolution rebuilds it with the new constructor.
//
//	container.Singleton[*sql.DB](c, openDatabase)
func Singleton[T any](c *Container, ctor any) error {
	return c.bind(typeOf[T](), ctor, LifetimeSingleton)
}

// Instance registers a pre-built value for T. The exact value is returned on
// every resolution; no constructor is involved, so Instance cannot fail.
//
//	container.Instance[*config.Config](c, cfg)
func Instance[T any](c *Container, value T) {
	c.supply(typeOf[T](), value)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve builds and returns the service registered for T, wiring its
// constructor dependencies recursively.
//
// It fails with *NotRegisteredError when T (or any transitive dependency)
// has no binding, *CircularDependencyError when the dependency graph loops,
// and *BuildError when a constructor reports an error. On failure the zero
// value of T is returned alongside the error, never a partially built graph.
func Resolve[T any](c *Container) (T, error) {
	v, err := c.Get(typeOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	// Compatibility with T is guaranteed at registration; the comma-ok form
	// only guards the case of a supplied or constructed untyped nil.
	typed, _ := v.(T)
	return typed, nil
}

// MustResolve is like Resolve but panics on failure. Intended for
// composition roots where a missing binding is a programming error that
// should abort startup.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}
