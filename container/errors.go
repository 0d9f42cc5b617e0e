package container

import (
	"fmt"
	"reflect"
	"strings"
)

// ── Error types ───────────────────────────────────────────────────────────────

// NotRegisteredError is returned when a service type (or one of its
// transitive dependencies) has no binding in the container.
//
// A missing binding is a configuration bug in the composition root, not a
// recoverable runtime condition: resolution never falls back to nil or a
// zero value.
type NotRegisteredError struct {
	// Service is the type that was requested.
	Service reflect.Type

	// RequiredBy is the type whose constructor needed Service, or nil when
	// Service was requested directly.
	RequiredBy reflect.Type
}

// Error implements the error interface.
func (e *NotRegisteredError) Error() string {
	if e.RequiredBy != nil {
		return fmt.Sprintf("container: no binding registered for [%s] (required by [%s])",
			typeName(e.Service), typeName(e.RequiredBy))
	}
	return fmt.Sprintf("container: no binding registered for [%s]", typeName(e.Service))
}

// InvalidConstructorError is returned when a binding's constructor cannot be
// used to build the service: it is nil, not a function, variadic, or its
// results do not produce the service type.
type InvalidConstructorError struct {
	// Service is the type the constructor was bound to.
	Service reflect.Type

	// Reason describes what is wrong with the constructor.
	Reason string
}

// Error implements the error interface.
func (e *InvalidConstructorError) Error() string {
	return fmt.Sprintf("container: invalid constructor for [%s]: %s", typeName(e.Service), e.Reason)
}

// CircularDependencyError is returned when a constructor's dependency graph
// reaches back to a type that is already being resolved on the same call.
//
// Path holds the full chain, starting at the first occurrence of the
// repeated type and ending with its second occurrence.
type CircularDependencyError struct {
	Path []reflect.Type
}

// Error implements the error interface.
func (e *CircularDependencyError) Error() string {
	names := make([]string, len(e.Path))
	for i, t := range e.Path {
		names[i] = typeName(t)
	}
	return "container: circular dependency: " + strings.Join(names, " -> ")
}

// BuildError is returned when a constructor runs but reports an error.
type BuildError struct {
	// Service is the type whose constructor failed.
	Service reflect.Type

	// Err is the error returned by the constructor.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("container: constructor for [%s] failed: %v", typeName(e.Service), e.Err)
}

// Unwrap exposes the constructor's error to errors.Is / errors.As.
func (e *BuildError) Unwrap() error { return e.Err }

// typeName renders a reflect.Type for error messages and events.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
