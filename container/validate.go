package container

import (
	"reflect"
	"sort"

	"go.uber.org/multierr"
)

// Validate checks the registered graph without constructing anything and
// reports every problem it can find, combined into one error:
//
//   - constructor parameters with no binding (*NotRegisteredError)
//   - static dependency cycles (*CircularDependencyError)
//
// Call it at the end of the composition root, after all providers have
// registered, to fail startup on configuration bugs before the first
// resolution. Resolution itself never requires a prior Validate call.
func (c *Container) Validate() error {
	c.mu.RLock()
	bindings := make(map[reflect.Type]*binding, len(c.bindings))
	for t, b := range c.bindings {
		bindings[t] = b
	}
	supplied := make(map[reflect.Type]bool, len(c.instances))
	for t := range c.instances {
		supplied[t] = true
	}
	c.mu.RUnlock()

	// Deterministic report order regardless of map iteration.
	services := make([]reflect.Type, 0, len(bindings))
	for t := range bindings {
		services = append(services, t)
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].String() < services[j].String()
	})

	var err error

	for _, svc := range services {
		for _, p := range bindings[svc].params {
			if _, ok := bindings[p]; ok {
				continue
			}
			if supplied[p] {
				continue
			}
			err = multierr.Append(err, &NotRegisteredError{Service: p, RequiredBy: svc})
		}
	}

	err = multierr.Append(err, findCycles(services, bindings))
	return err
}

// findCycles runs a depth-first search over the binding graph, reporting one
// CircularDependencyError per distinct cycle.
func findCycles(services []reflect.Type, bindings map[reflect.Type]*binding) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[reflect.Type]int, len(bindings))

	var err error
	var stack []reflect.Type

	var visit func(t reflect.Type)
	visit = func(t reflect.Type) {
		switch state[t] {
		case done:
			return
		case visiting:
			err = multierr.Append(err, &CircularDependencyError{Path: cyclePath(stack, t)})
			return
		}
		state[t] = visiting
		stack = append(stack, t)
		if b, ok := bindings[t]; ok {
			for _, p := range b.params {
				visit(p)
			}
		}
		stack = stack[:len(stack)-1]
		state[t] = done
	}

	for _, svc := range services {
		visit(svc)
	}
	return err
}
