package signaltest

import (
	"io"

	"github.com/onsi/gomega/types"
)

// SpyOn creates a new Spy on the given signal in the Default Registry.
func SpyOn(sig Signal, matchers ...Matcher) (*Spy, error) {
	return Default.SpyOn(sig, matchers...)
}

// MustSpyOn creates a new Spy on the given signal in the Default Registry and
// fails the test immediately if that is not possible. The Spy is stopped when
// the test has completed.
func MustSpyOn(t TestingT, sig Signal, matchers ...Matcher) *Spy {
	t.Helper()

	s, err := Default.SpyOn(sig, matchers...)
	if err != nil {
		t.Errorf("Failed to spy on signal: %v", err)
		t.FailNow()
		return nil
	}

	t.Cleanup(s.Stop)
	return s
}

// NewSpyGroup creates a SpyGroup in the Default Registry.
func NewSpyGroup(names []string) (SpyGroup, error) {
	return Default.NewSpyGroup(names)
}

// LoadSpyGroup creates a SpyGroup from a YAML list of names in the Default
// Registry.
func LoadSpyGroup(in io.Reader) (SpyGroup, error) {
	return Default.LoadSpyGroup(in)
}

// Dispatched checks the subject using the Default Registry.
func Dispatched(subject interface{}, expectedCount ...int) (Result, error) {
	return Default.Dispatched(subject, expectedCount...)
}

// DispatchedWith checks the subject using the Default Registry.
func DispatchedWith(subject interface{}, expectedArgs ...interface{}) (Result, error) {
	return Default.DispatchedWith(subject, expectedArgs...)
}

// HaveBeenDispatched is Registry.HaveBeenDispatched(…) of the Default Registry.
func HaveBeenDispatched(expectedCount ...int) types.GomegaMatcher {
	return Default.HaveBeenDispatched(expectedCount...)
}

// HaveBeenDispatchedWith is Registry.HaveBeenDispatchedWith(…) of the Default
// Registry.
func HaveBeenDispatchedWith(args ...interface{}) types.GomegaMatcher {
	return Default.HaveBeenDispatchedWith(args...)
}

// AssertDispatched is Registry.AssertDispatched(…) of the Default Registry.
func AssertDispatched(t TestingT, subject interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()
	return Default.AssertDispatched(t, subject, msgAndArgs...)
}

// AssertNotDispatched is Registry.AssertNotDispatched(…) of the Default Registry.
func AssertNotDispatched(t TestingT, subject interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()
	return Default.AssertNotDispatched(t, subject, msgAndArgs...)
}

// AssertDispatchedTimes is Registry.AssertDispatchedTimes(…) of the Default
// Registry.
func AssertDispatchedTimes(t TestingT, subject interface{}, n int, msgAndArgs ...interface{}) bool {
	t.Helper()
	return Default.AssertDispatchedTimes(t, subject, n, msgAndArgs...)
}

// AssertNotDispatchedTimes is Registry.AssertNotDispatchedTimes(…) of the
// Default Registry.
func AssertNotDispatchedTimes(t TestingT, subject interface{}, n int, msgAndArgs ...interface{}) bool {
	t.Helper()
	return Default.AssertNotDispatchedTimes(t, subject, n, msgAndArgs...)
}

// AssertDispatchedWith is Registry.AssertDispatchedWith(…) of the Default
// Registry.
func AssertDispatchedWith(t TestingT, subject interface{}, args ...interface{}) bool {
	t.Helper()
	return Default.AssertDispatchedWith(t, subject, args...)
}

// AssertNotDispatchedWith is Registry.AssertNotDispatchedWith(…) of the
// Default Registry.
func AssertNotDispatchedWith(t TestingT, subject interface{}, args ...interface{}) bool {
	t.Helper()
	return Default.AssertNotDispatchedWith(t, subject, args...)
}
