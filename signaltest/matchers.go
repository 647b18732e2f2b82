package signaltest

import (
	"github.com/onsi/gomega/types"
)

// HaveBeenDispatched returns a gomega matcher that succeeds if the actual
// value (a Spy or a signal with a Spy in this Registry) was dispatched. If an
// expected count is given it must have been dispatched exactly that often.
func (r *Registry) HaveBeenDispatched(expectedCount ...int) types.GomegaMatcher {
	return &dispatchedMatcher{
		check: func(actual interface{}) (Result, error) {
			return r.Dispatched(actual, expectedCount...)
		},
	}
}

// HaveBeenDispatchedWith returns a gomega matcher that succeeds if the actual
// value was dispatched with exactly the given arguments.
func (r *Registry) HaveBeenDispatchedWith(args ...interface{}) types.GomegaMatcher {
	return &dispatchedMatcher{
		check: func(actual interface{}) (Result, error) {
			return r.DispatchedWith(actual, args...)
		},
	}
}

type dispatchedMatcher struct {
	check  func(actual interface{}) (Result, error)
	result Result
}

func (m *dispatchedMatcher) Match(actual interface{}) (bool, error) {
	res, err := m.check(actual)
	if err != nil {
		return false, err
	}

	m.result = res
	return res.Passed, nil
}

func (m *dispatchedMatcher) FailureMessage(interface{}) string {
	return m.result.Message
}

func (m *dispatchedMatcher) NegatedFailureMessage(interface{}) string {
	return m.result.NegatedMessage
}
