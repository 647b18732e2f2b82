package signals

import "go.uber.org/zap"

// An Option configures a Signal when it is created via New(…).
type Option func(*Signal)

// WithLogger is an option to replace the default logger of a Signal. If the
// passed logger is nil the Signal falls back to the zap.NewNop() logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Signal) {
		if logger == nil {
			logger = zap.NewNop()
		}
		s.logger = logger
	}
}

// WithMemorize is an option to let the Signal remember the arguments of its
// last dispatch. Every listener that is added afterwards is executed
// immediately with these arguments until Signal.Forget() is called.
func WithMemorize(memorize bool) Option {
	return func(s *Signal) {
		s.memorize = memorize
	}
}
