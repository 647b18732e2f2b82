// Package signaltest implements spies and assertions to unit test code that
// dispatches signals.
//
// A Spy subscribes to a signal with the highest priority, records the
// arguments of every dispatch and halts the dispatch before it reaches any
// other listener:
//
//	sig := signals.New()
//	spy := signaltest.MustSpyOn(t, sig)
//
//	sig.Dispatch(1, 5)
//
//	signaltest.AssertDispatched(t, sig)
//	signaltest.AssertDispatchedWith(t, sig, 1, 5)
//
// The same checks are available as gomega matchers:
//
//	Expect(sig).To(signaltest.HaveBeenDispatched(1))
//	Expect(spy).NotTo(signaltest.HaveBeenDispatchedWith(2, 6))
package signaltest

// TestingT is the minimum required subset of the testing API used in the
// signaltest package. TestingT is implemented both by *testing.T and *testing.B.
type TestingT interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	Fail()
	Failed() bool
	Name() string
	FailNow()
	Helper()
	Cleanup(func())
}
