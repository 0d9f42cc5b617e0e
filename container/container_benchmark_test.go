package container_test

import (
	"testing"

	"github.com/solder-di/solder/container"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func newBenchContainer(b *testing.B) *container.Container {
	b.Helper()

	c := container.New()
	if err := container.Bind[Repository](c, func() Repository { return &InMemoryRepository{} }); err != nil {
		b.Fatal(err)
	}
	if err := container.Singleton[Clock](c, func() Clock { return SystemClock{} }); err != nil {
		b.Fatal(err)
	}
	if err := container.Bind[*UserService](c, NewUserService); err != nil {
		b.Fatal(err)
	}
	return c
}

/*
   Benchmarks
*/

func BenchmarkBind(b *testing.B) {
	c := container.New()
	ctor := func() Repository { return &InMemoryRepository{} }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = container.Bind[Repository](c, ctor)
	}
}

func BenchmarkResolve_MaterializedSingleton(b *testing.B) {
	c := newBenchContainer(b)
	if _, err := container.Resolve[Clock](c); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = container.Resolve[Clock](c)
	}
}

func BenchmarkResolve_TransientGraph(b *testing.B) {
	c := newBenchContainer(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = container.Resolve[*UserService](c)
	}
}

func BenchmarkValidate(b *testing.B) {
	c := newBenchContainer(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Validate()
	}
}
