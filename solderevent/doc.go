// Package solderevent defines the events emitted by the solder container
// and the Logger interface used to observe them.
//
// The container is silent by default (NopLogger). To watch bindings and
// resolutions during development, pass a ConsoleLogger; in applications that
// already use Zap, pass a ZapLogger:
//
//	c := container.New(container.WithLogger(&solderevent.ZapLogger{Logger: log}))
//
// Events are value objects; loggers must not mutate them.
package solderevent
