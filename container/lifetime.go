package container

// Lifetime governs whether a binding yields a fresh instance per resolution
// or a single memoized instance.
type Lifetime int

const (
	// LifetimeTransient creates a new instance (and a new dependency graph)
	// on every resolution. This is the lifetime used by Bind.
	LifetimeTransient Lifetime = iota

	// LifetimeSingleton creates the instance lazily on first resolution and
	// reuses it for every subsequent resolution. Used by Singleton and,
	// implicitly, by Instance.
	LifetimeSingleton
)

// String returns "Transient" or "Singleton".
func (l Lifetime) String() string {
	switch l {
	case LifetimeTransient:
		return "Transient"
	case LifetimeSingleton:
		return "Singleton"
	default:
		return "Unknown"
	}
}
