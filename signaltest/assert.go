package signaltest

import (
	"github.com/stretchr/testify/assert"
)

// AssertDispatched asserts that the subject (a Spy or a signal with a
// registered Spy) was dispatched at least once.
func (r *Registry) AssertDispatched(t TestingT, subject interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()
	res, err := r.Dispatched(subject)
	return report(t, res, err, false, msgAndArgs)
}

// AssertNotDispatched asserts that the subject was never dispatched.
func (r *Registry) AssertNotDispatched(t TestingT, subject interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()
	res, err := r.Dispatched(subject)
	return report(t, res, err, true, msgAndArgs)
}

// AssertDispatchedTimes asserts that the subject was dispatched exactly n times.
func (r *Registry) AssertDispatchedTimes(t TestingT, subject interface{}, n int, msgAndArgs ...interface{}) bool {
	t.Helper()
	res, err := r.Dispatched(subject, n)
	return report(t, res, err, false, msgAndArgs)
}

// AssertNotDispatchedTimes asserts that the subject was not dispatched
// exactly n times.
func (r *Registry) AssertNotDispatchedTimes(t TestingT, subject interface{}, n int, msgAndArgs ...interface{}) bool {
	t.Helper()
	res, err := r.Dispatched(subject, n)
	return report(t, res, err, true, msgAndArgs)
}

// AssertDispatchedWith asserts that the subject was dispatched with exactly
// the given arguments at least once.
func (r *Registry) AssertDispatchedWith(t TestingT, subject interface{}, args ...interface{}) bool {
	t.Helper()
	res, err := r.DispatchedWith(subject, args...)
	return report(t, res, err, false, nil)
}

// AssertNotDispatchedWith asserts that the subject was never dispatched with
// exactly the given arguments.
func (r *Registry) AssertNotDispatchedWith(t TestingT, subject interface{}, args ...interface{}) bool {
	t.Helper()
	res, err := r.DispatchedWith(subject, args...)
	return report(t, res, err, true, nil)
}

func report(t TestingT, res Result, err error, negated bool, msgAndArgs []interface{}) bool {
	t.Helper()

	switch {
	case err != nil:
		return assert.Fail(t, err.Error(), msgAndArgs...)
	case negated && res.Passed:
		return assert.Fail(t, res.NegatedMessage, msgAndArgs...)
	case !negated && !res.Passed:
		return assert.Fail(t, res.Message, msgAndArgs...)
	default:
		return true
	}
}
