package signaltest

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
)

// A Result is the outcome of checking a Spy. Both messages are computed up
// front so the caller can report a failure no matter if it asserted the
// check or its negation.
type Result struct {
	Passed         bool
	Message        string // reported if the check was expected to pass but did not
	NegatedMessage string // reported if the check was expected to fail but did not
}

// Dispatched checks if the Spy has recorded at least one dispatch that
// satisfied its Matcher. If an expected count is given, the number of
// matching dispatches must be exactly that count instead. Only the first
// count is considered.
func (s *Spy) Dispatched(expectedCount ...int) Result {
	s.mu.Lock()
	count := s.count
	dispatches := copyDispatches(s.dispatches)
	expectedArgs := s.expectedArgs
	s.mu.Unlock()

	var passed bool
	var details strings.Builder
	if len(expectedCount) == 0 {
		passed = count > 0
	} else {
		passed = count == expectedCount[0]
		fmt.Fprintf(&details, " %d times but was %d", expectedCount[0], count)
	}

	if expectedArgs != nil {
		fmt.Fprintf(&details, " with (%s) but was with %s", joinArgs(expectedArgs, ","), formatDispatches(dispatches))
	}

	return s.result(passed, details.String())
}

// DispatchedWith checks if the Spy has recorded a dispatch with exactly the
// given arguments. Only dispatches that satisfy the current Matcher of the
// Spy are considered.
func (s *Spy) DispatchedWith(expectedArgs ...interface{}) Result {
	s.mu.Lock()
	matcher := s.matcher
	dispatches := copyDispatches(s.dispatches)
	s.mu.Unlock()

	var passed bool
	for _, d := range dispatches {
		if matcher(d...) && argsEqual(d, expectedArgs) {
			passed = true
			break
		}
	}

	var details string
	if len(expectedArgs) > 0 {
		details = fmt.Sprintf(" with (%s) but was ", joinArgs(expectedArgs, ", "))
		if len(dispatches) == 0 {
			details += "not dispatched"
		} else {
			details += "with " + formatDispatches(dispatches)
		}
	}

	return s.result(passed, details)
}

func (s *Spy) result(passed bool, details string) Result {
	desc := s.String()
	return Result{
		Passed:         passed,
		Message:        "Expected " + desc + " to have been dispatched" + details,
		NegatedMessage: "Expected " + desc + " not to have been dispatched" + details,
	}
}

// argsEqual compares two argument lists element by element. Contrary to
// comparing the slices directly, an empty and a nil list are equal.
func argsEqual(expected, actual []interface{}) bool {
	if len(expected) != len(actual) {
		return false
	}

	for i := range expected {
		if !assert.ObjectsAreEqual(expected[i], actual[i]) {
			return false
		}
	}

	return true
}

func joinArgs(args []interface{}, sep string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}

	return strings.Join(parts, sep)
}

// formatDispatches renders recorded dispatches like "(1,2)(3,4)".
func formatDispatches(dispatches [][]interface{}) string {
	var b strings.Builder
	for _, d := range dispatches {
		b.WriteString("(")
		b.WriteString(joinArgs(d, ","))
		b.WriteString(")")
	}

	return b.String()
}
