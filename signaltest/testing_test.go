package signaltest

import "fmt"

type mockT struct {
	Errors   []string
	failed   bool
	fatal    bool
	cleanups []func()
}

func (m *mockT) Logf(string, ...interface{}) {}

func (m *mockT) Errorf(msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	m.Errors = append(m.Errors, msg)
	m.failed = true
}

func (m *mockT) Fail() {
	m.failed = true
}

func (m *mockT) Failed() bool {
	return m.failed
}

func (*mockT) Name() string {
	return "mock"
}

func (m *mockT) FailNow() {
	m.failed = true
	m.fatal = true
}

func (*mockT) Helper() {}

func (m *mockT) Cleanup(f func()) {
	m.cleanups = append(m.cleanups, f)
}

// finish runs all cleanup functions in reverse order like the testing package.
func (m *mockT) finish() {
	for i := len(m.cleanups) - 1; i >= 0; i-- {
		m.cleanups[i]()
	}
	m.cleanups = nil
}
