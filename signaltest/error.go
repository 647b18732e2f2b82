package signaltest

// Error is the error type used by the signaltest package. This allows errors
// to be defined as constants following https://dave.cheney.net/2016/04/07/constant-errors.
type Error string

// Error implements the "error" interface of the standard library.
func (err Error) Error() string {
	return string(err)
}

const (
	// ErrInvalidArgument is the cause of all errors that are returned when a
	// Spy or SpyGroup is created with invalid arguments.
	ErrInvalidArgument = Error("invalid argument")

	// ErrConfiguration is the cause of all errors that are returned when an
	// assertion is made about a value that cannot be resolved to a Spy.
	ErrConfiguration = Error("configuration error")
)

// An InjectedError is returned from the dispatch of a signal after the Spy
// on that signal was configured via Spy.AndThrow(…).
type InjectedError struct {
	Message string
}

func (err *InjectedError) Error() string {
	return err.Message
}
