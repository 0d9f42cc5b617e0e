package solderevent

import (
	"fmt"
	"io"
	"os"
)

// NopLogger discards all events. It is the container's default.
var NopLogger Logger = nopLogger{}

// Logger receives container events.
//
// Implementations must be safe for concurrent use: the container calls
// LogEvent from whichever goroutine triggered the event.
type Logger interface {
	LogEvent(Event)
}

type nopLogger struct{}

func (nopLogger) LogEvent(Event) {}

// ConsoleLogger writes human-readable lines to W, one per event.
//
//	c := container.New(container.WithLogger(&solderevent.ConsoleLogger{W: os.Stderr}))
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

// LogEvent implements Logger.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.logf("REGISTERED\t%s (%s) <- %s", e.TypeName, e.Lifetime, e.ConstructorName)
	case *Supplied:
		l.logf("SUPPLIED\t%s", e.TypeName)
	case *Resolved:
		if e.Err != nil {
			l.logf("RESOLVE FAILED\t%s: %v", e.TypeName, e.Err)
		} else {
			l.logf("RESOLVED\t%s", e.TypeName)
		}
	}
}

func (l *ConsoleLogger) logf(msg string, args ...any) {
	w := l.W
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "[solder] "+msg+"\n", args...)
}
