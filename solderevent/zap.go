package solderevent

import "go.uber.org/zap"

// ZapLogger logs container events to a Zap logger.
//
// Registration and resolution events are logged at Debug level so that a
// production logger stays quiet; failed resolutions are logged at Error.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent implements Logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.Logger.Debug("registered",
			zap.String("type", e.TypeName),
			zap.String("lifetime", e.Lifetime),
			zap.String("constructor", e.ConstructorName),
		)
	case *Supplied:
		l.Logger.Debug("supplied", zap.String("type", e.TypeName))
	case *Resolved:
		if e.Err != nil {
			l.Logger.Error("resolve failed",
				zap.String("type", e.TypeName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("resolved", zap.String("type", e.TypeName))
		}
	}
}
