package signals

// Error is the error type used by the signals package. This allows errors to
// be defined as constants following https://dave.cheney.net/2016/04/07/constant-errors.
type Error string

// Error implements the "error" interface of the standard library.
func (err Error) Error() string {
	return string(err)
}

// ErrDisposed is returned when adding listeners to or dispatching a Signal
// after Signal.Dispose() was called.
const ErrDisposed = Error("signal is disposed")
