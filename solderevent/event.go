package solderevent

// Event is emitted by the container as bindings are registered and resolved.
type Event interface {
	event() // only this package can implement Event
}

func (*Registered) event() {}
func (*Supplied) event()   {}
func (*Resolved) event()   {}

// Registered is emitted when a constructor is bound to a service type.
type Registered struct {
	// TypeName is the service type the constructor was bound to.
	TypeName string
	// Lifetime is "Transient" or "Singleton".
	Lifetime string
	// ConstructorName is the fully qualified name of the constructor function.
	ConstructorName string
}

// Supplied is emitted when a pre-built instance is bound to a service type.
type Supplied struct {
	// TypeName is the service type the instance was bound to.
	TypeName string
}

// Resolved is emitted after a resolution attempt, successful or not.
type Resolved struct {
	// TypeName is the service type that was requested.
	TypeName string
	// Err is non-nil if the resolution failed.
	Err error
}
