package container_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/solder-di/solder/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	container.BaseProvider
	registerCalled bool
	bootCalled     bool
}

func (p *eagerProvider) Register(c *container.Container) error {
	p.registerCalled = true
	return container.Singleton[Clock](c, func() Clock { return SystemClock{} })
}

func (p *eagerProvider) Boot(c *container.Container) error {
	p.bootCalled = true
	return nil
}

// deferredProvider is lazy: it registers only when Repository is first resolved.
type deferredProvider struct {
	container.BaseProvider
	registerCalled bool
	bootCalled     bool
}

func (p *deferredProvider) Register(c *container.Container) error {
	p.registerCalled = true
	return container.Singleton[Repository](c, func() Repository { return &InMemoryRepository{} })
}

func (p *deferredProvider) Boot(c *container.Container) error {
	p.bootCalled = true
	return nil
}

func (p *deferredProvider) IsDeferred() bool { return true }

func (p *deferredProvider) Provides() []reflect.Type {
	return []reflect.Type{reflect.TypeOf((*Repository)(nil)).Elem()}
}

type failingProvider struct {
	container.BaseProvider
	registerErr error
	bootErr     error
}

func (p *failingProvider) Register(*container.Container) error { return p.registerErr }
func (p *failingProvider) Boot(*container.Container) error     { return p.bootErr }

// ── eager providers ───────────────────────────────────────────────────────────

func TestRegistry_EagerProvider_RegisterCalledImmediately(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	assert.True(t, p.registerCalled)
	assert.False(t, p.bootCalled, "Boot must wait for registry.Boot()")
}

func TestRegistry_Boot_CallsProvidersInOrder(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Boot())

	assert.True(t, p.bootCalled)
	assert.True(t, reg.Booted())

	clock, err := container.Resolve[Clock](c)
	require.NoError(t, err)
	assert.Equal(t, int64(1), clock.Now())
}

func TestRegistry_Boot_Idempotent(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)

	assert.False(t, reg.Booted())
	require.NoError(t, reg.Boot())
	require.NoError(t, reg.Boot())
	assert.True(t, reg.Booted())
}

func TestRegistry_Register_SameProviderTwiceIsNoOp(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Register(p))

	assert.Len(t, reg.Providers(), 1)
}

func TestRegistry_RegisterAfterBoot_BootsImmediately(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)
	require.NoError(t, reg.Boot())

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	assert.True(t, p.bootCalled)
}

// ── error propagation ─────────────────────────────────────────────────────────

func TestRegistry_Register_PropagatesError(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)

	boom := errors.New("bad binding")
	err := reg.Register(&failingProvider{registerErr: boom})
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_Boot_AggregatesAllFailures(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)

	first := errors.New("first boot failure")
	second := errors.New("second boot failure")
	require.NoError(t, reg.Register(&failingProvider{bootErr: first}))
	require.NoError(t, reg.Register(&failingProvider{bootErr: second}))

	err := reg.Boot()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

// ── deferred providers ────────────────────────────────────────────────────────

func TestRegistry_DeferredProvider_NotRegisteredUpFront(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &deferredProvider{}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Boot())

	assert.False(t, p.registerCalled)
	assert.False(t, c.Bound(reflect.TypeOf((*Repository)(nil)).Elem()))
}

func TestRegistry_DeferredProvider_LoadedOnFirstResolve(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &deferredProvider{}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Boot())

	repo, err := container.Resolve[Repository](c)
	require.NoError(t, err)
	require.NotNil(t, repo)

	assert.True(t, p.registerCalled)
	assert.True(t, p.bootCalled, "deferred provider boots on load when registry is already booted")

	// Loaded once; later resolutions go through the normal binding.
	again, err := container.Resolve[Repository](c)
	require.NoError(t, err)
	assert.Same(t, repo, again)
}

func TestRegistry_DeferredProvider_UnrelatedTypeStillFails(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)
	require.NoError(t, reg.Register(&deferredProvider{}))

	_, err := container.Resolve[Clock](c)
	require.Error(t, err)

	var nr *container.NotRegisteredError
	assert.True(t, errors.As(err, &nr))
}
