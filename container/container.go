package container

import (
	"reflect"
	"runtime"
	"sync"

	"github.com/solder-di/solder/solderevent"
)

// ── Bindings ──────────────────────────────────────────────────────────────────

// binding holds one registered constructor plus its lifetime.
type binding struct {
	// service is the type the constructor was bound to.
	service reflect.Type

	// lifetime decides whether the result is memoized.
	lifetime Lifetime

	// ctor is the constructor function value.
	ctor reflect.Value

	// params are the constructor's parameter types, resolved recursively.
	params []reflect.Type

	// returnsErr is true when the constructor's shape is func(...) (T, error).
	returnsErr bool

	// ctorName is the constructor's qualified function name, for diagnostics.
	ctorName string
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// newBinding validates ctor against service and builds a binding.
//
// Accepted constructor shapes:
//
//	func(deps...) T
//	func(deps...) (T, error)
//
// where T is the service type itself, or any type implementing it when the
// service type is an interface. The shape is checked here, at registration,
// so a misconfigured binding fails at the composition root rather than on
// first resolution.
func newBinding(service reflect.Type, ctor any, lifetime Lifetime) (*binding, error) {
	if ctor == nil {
		return nil, &InvalidConstructorError{Service: service, Reason: "constructor is nil"}
	}

	v := reflect.ValueOf(ctor)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, &InvalidConstructorError{Service: service, Reason: "constructor is not a function (got " + t.String() + ")"}
	}
	if t.IsVariadic() {
		return nil, &InvalidConstructorError{Service: service, Reason: "variadic constructors are not supported"}
	}

	returnsErr := false
	switch t.NumOut() {
	case 1:
		// func(deps...) T
	case 2:
		if !t.Out(1).Implements(errType) {
			return nil, &InvalidConstructorError{Service: service, Reason: "second return value must be error (got " + t.Out(1).String() + ")"}
		}
		returnsErr = true
	default:
		return nil, &InvalidConstructorError{Service: service, Reason: "constructor must return T or (T, error)"}
	}

	out := t.Out(0)
	if out != service {
		if service.Kind() != reflect.Interface || !out.AssignableTo(service) {
			return nil, &InvalidConstructorError{
				Service: service,
				Reason:  "constructor returns " + out.String() + ", which does not satisfy the service type",
			}
		}
	}

	params := make([]reflect.Type, t.NumIn())
	for i := range params {
		params[i] = t.In(i)
	}

	return &binding{
		service:    service,
		lifetime:   lifetime,
		ctor:       v,
		params:     params,
		returnsErr: returnsErr,
		ctorName:   funcName(v),
	}, nil
}

// funcName returns the qualified name of a function value.
func funcName(v reflect.Value) string {
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return v.Type().String()
	}
	return fn.Name()
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container: a registry mapping service types to
// constructors (or pre-built instances) plus a lifetime policy.
//
// A Container is created explicitly with New at the composition root and
// passed to wherever registration or resolution is needed; there is no
// package-global instance.
//
// Registration and resolution are safe for concurrent use. Two notes on the
// guarantees:
//
//   - Registrations are last-write-wins; a resolution racing a registration
//     of the same type may observe either binding.
//   - Two goroutines resolving the same unmaterialized singleton may each run
//     its constructor; only one result is stored and returned to everyone
//     afterwards, the other is discarded. At most one instance survives, not
//     at most one is constructed.
//
// Singleton instances, once materialized, are shared by reference across all
// callers; synchronizing access to them is the instance's own concern.
type Container struct {
	mu sync.RWMutex

	// service type → binding
	bindings map[reflect.Type]*binding

	// service type → materialized singleton or supplied instance
	instances map[reflect.Type]any

	// missing, when set, is consulted before failing a lookup. Used by
	// ProviderRegistry to load deferred providers on first resolution.
	missing func(reflect.Type) error

	logger solderevent.Logger
}

// Option configures a Container at construction time.
type Option func(*Container)

// WithLogger makes the container emit registration and resolution events to
// l. The default is solderevent.NopLogger.
func WithLogger(l solderevent.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		bindings:  make(map[reflect.Type]*binding),
		instances: make(map[reflect.Type]any),
		logger:    solderevent.NopLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Registration internals ────────────────────────────────────────────────────

// bind stores a binding, replacing any prior one for the same service type.
// A previously materialized singleton is dropped so the type is rebuilt with
// the new constructor.
func (c *Container) bind(service reflect.Type, ctor any, lifetime Lifetime) error {
	b, err := newBinding(service, ctor, lifetime)
	if err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.instances, service)
	c.bindings[service] = b
	c.mu.Unlock()

	c.logger.LogEvent(&solderevent.Registered{
		TypeName:        typeName(service),
		Lifetime:        lifetime.String(),
		ConstructorName: b.ctorName,
	})
	return nil
}

// supply stores a pre-built instance, replacing any prior binding for the
// same service type.
func (c *Container) supply(service reflect.Type, value any) {
	c.mu.Lock()
	delete(c.bindings, service)
	c.instances[service] = value
	c.mu.Unlock()

	c.logger.LogEvent(&solderevent.Supplied{TypeName: typeName(service)})
}

// setMissingHook installs the deferred-provider hook. Internal to the
// provider registry.
func (c *Container) setMissingHook(hook func(reflect.Type) error) {
	c.mu.Lock()
	c.missing = hook
	c.mu.Unlock()
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves a service by its reflect.Type and returns it untyped.
// Prefer the generic Resolve, which needs no type assertion at the call site.
func (c *Container) Get(service reflect.Type) (any, error) {
	v, err := c.resolve(service, nil)
	c.logger.LogEvent(&solderevent.Resolved{TypeName: typeName(service), Err: err})
	return v, err
}

// resolve builds the object graph for service. stack holds the types
// currently being constructed on this call, for cycle detection.
func (c *Container) resolve(service reflect.Type, stack []reflect.Type) (any, error) {
	c.mu.RLock()
	inst, done := c.instances[service]
	b, ok := c.bindings[service]
	missing := c.missing
	c.mu.RUnlock()

	// Materialized singletons and supplied instances short-circuit: no
	// constructor runs again for them.
	if done {
		return inst, nil
	}

	if !ok {
		if missing != nil {
			if err := missing(service); err != nil {
				return nil, err
			}
			c.mu.RLock()
			inst, done = c.instances[service]
			b, ok = c.bindings[service]
			c.mu.RUnlock()
			if done {
				return inst, nil
			}
		}
		if !ok {
			err := &NotRegisteredError{Service: service}
			if len(stack) > 0 {
				err.RequiredBy = stack[len(stack)-1]
			}
			return nil, err
		}
	}

	for _, seen := range stack {
		if seen == service {
			return nil, &CircularDependencyError{Path: cyclePath(stack, service)}
		}
	}
	stack = append(stack, service)

	args := make([]reflect.Value, len(b.params))
	for i, p := range b.params {
		dep, err := c.resolve(p, stack)
		if err != nil {
			return nil, err
		}
		v := reflect.ValueOf(dep)
		if !v.IsValid() {
			// A constructor legitimately returned an untyped nil.
			v = reflect.Zero(p)
		}
		args[i] = v
	}

	out := b.ctor.Call(args)
	if b.returnsErr && !out[1].IsNil() {
		return nil, &BuildError{Service: service, Err: out[1].Interface().(error)}
	}
	value := out[0].Interface()

	if b.lifetime == LifetimeSingleton {
		c.mu.Lock()
		if winner, raced := c.instances[service]; raced {
			// Another goroutine materialized this singleton first; its
			// instance survives, ours is discarded.
			c.mu.Unlock()
			return winner, nil
		}
		c.instances[service] = value
		c.mu.Unlock()
	}
	return value, nil
}

// cyclePath trims stack to start at the first occurrence of service and
// appends service again to close the loop.
func cyclePath(stack []reflect.Type, service reflect.Type) []reflect.Type {
	start := 0
	for i, t := range stack {
		if t == service {
			start = i
			break
		}
	}
	path := make([]reflect.Type, 0, len(stack)-start+1)
	path = append(path, stack[start:]...)
	return append(path, service)
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Bound reports whether a binding or supplied instance exists for service.
func (c *Container) Bound(service reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.bindings[service]; ok {
		return true
	}
	_, ok := c.instances[service]
	return ok
}

// Resolved reports whether service has a materialized instance: either it
// was supplied directly, or it is a singleton that has been resolved at
// least once.
func (c *Container) Resolved(service reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[service]
	return ok
}

// Bindings returns all registered service types (for debugging).
func (c *Container) Bindings() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]reflect.Type, 0, len(c.bindings)+len(c.instances))
	for t := range c.bindings {
		out = append(out, t)
	}
	for t := range c.instances {
		if _, already := c.bindings[t]; !already {
			out = append(out, t)
		}
	}
	return out
}
