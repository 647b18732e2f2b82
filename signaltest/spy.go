package signaltest

import (
	"sync"

	"github.com/go-joe/signals"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// SpyPriority is the priority with which a Spy subscribes to its signal. It is
// higher than the priority of any ordinary listener so a Spy always sees a
// dispatch first and can halt it.
const SpyPriority = 999

// Signal is the capability a Spy needs from the signal it is spying on. It is
// implemented by *signals.Signal.
type Signal interface {
	AddWithPriority(listener interface{}, priority int) (*signals.Binding, error)
	Remove(*signals.Binding) bool
	Bindings() []*signals.Binding
	Halt()
	Dispatch(args ...interface{}) error
	String() string
}

var _ Signal = (*signals.Signal)(nil)

// A Matcher decides if the arguments of a dispatch are counted by a Spy.
type Matcher func(args ...interface{}) bool

type planKind int

const (
	planNoop planKind = iota
	planCallThrough
	planThrow
	planCallFake
)

// A plan is what a Spy does after it has recorded and halted a dispatch.
type plan struct {
	kind    planKind
	message string           // used by planThrow
	fake    signals.Listener // used by planCallFake
}

// A Spy records all dispatches of a signal. While the Spy is active it is the
// first listener of the signal and halts every dispatch, so no other listener
// sees it unless the Spy was configured via Spy.AndCallThrough().
type Spy struct {
	logger *zap.Logger

	mu           sync.Mutex
	signal       Signal
	name         string // describes fixture stubs that are not bound to a signal
	matcher      Matcher
	expectedArgs []interface{} // only set by Spy.MatchingArgs(…)
	dispatches   [][]interface{}
	count        int
	plan         plan
	binding      *signals.Binding
	callingThru  bool // set while the Spy delivers a dispatch to the other listeners
}

func newSpy(logger *zap.Logger, sig Signal, matchers []Matcher) *Spy {
	return &Spy{
		logger:  logger,
		signal:  sig,
		matcher: allOf(matchers),
	}
}

// newStub creates a Spy that is not bound to any signal yet.
func newStub(logger *zap.Logger, name string) *Spy {
	return &Spy{
		logger:  logger,
		name:    name,
		matcher: matchAll,
	}
}

func matchAll(...interface{}) bool {
	return true
}

func allOf(matchers []Matcher) Matcher {
	var ms []Matcher
	for _, m := range matchers {
		if m != nil {
			ms = append(ms, m)
		}
	}

	switch len(ms) {
	case 0:
		return matchAll
	case 1:
		return ms[0]
	}

	return func(args ...interface{}) bool {
		for _, m := range ms {
			if !m(args...) {
				return false
			}
		}
		return true
	}
}

// Initialize subscribes the Spy to its signal. This is done automatically when
// the Spy is created so you only need to call this function to resume spying
// after Spy.Stop() was called. Calling Initialize on an active Spy or on a
// Spy that was not yet bound to a signal does nothing.
func (s *Spy) Initialize() error {
	s.mu.Lock()
	sig := s.signal
	subscribed := s.binding != nil && s.binding.IsBound()
	s.mu.Unlock()

	if sig == nil || subscribed {
		return nil
	}

	// The lock must not be held here since a memorizing signal executes the
	// new listener right away.
	b, err := sig.AddWithPriority(s.onDispatch, SpyPriority)
	if err != nil {
		// A memorizing signal returns the binding together with the error
		// of the replay. The spy must not stay subscribed in that case.
		if b != nil {
			sig.Remove(b)
		}
		return errors.Wrap(err, "failed to subscribe spy")
	}

	s.mu.Lock()
	s.binding = b
	s.mu.Unlock()

	s.logger.Debug("Spy subscribed", zap.Stringer("signal", sig))
	return nil
}

// Stop unsubscribes the Spy from its signal. All dispatches that happen after
// the Spy was stopped reach the other listeners and are not recorded.
func (s *Spy) Stop() {
	s.mu.Lock()
	sig, b := s.signal, s.binding
	s.binding = nil
	s.mu.Unlock()

	if sig == nil || b == nil {
		return
	}

	sig.Remove(b)
	s.logger.Debug("Spy stopped", zap.Stringer("signal", sig))
}

// Bind connects a Spy that was created via NewSpyGroup(…) with an actual
// signal and starts spying on it.
func (s *Spy) Bind(sig Signal) error {
	if isNil(sig) {
		return errors.Wrap(ErrInvalidArgument, "Bind requires a signal as a parameter")
	}

	s.mu.Lock()
	if s.signal != nil {
		s.mu.Unlock()
		return errors.Wrapf(ErrInvalidArgument, "spy %q is already bound to a signal", s.name)
	}
	s.signal = sig
	s.mu.Unlock()

	err := s.Initialize()
	if err != nil {
		s.mu.Lock()
		s.signal = nil
		s.mu.Unlock()
	}

	return err
}

// Matching replaces the Matcher that decides which dispatches are counted.
// It only affects future dispatches.
func (s *Spy) Matching(m Matcher) *Spy {
	s.mu.Lock()
	s.matcher = allOf([]Matcher{m})
	s.expectedArgs = nil
	s.mu.Unlock()
	return s
}

// MatchingArgs only counts dispatches with exactly the given arguments. In
// contrast to Spy.Matching(…) the expected arguments also show up in the
// message of a failed Dispatched assertion.
func (s *Spy) MatchingArgs(args ...interface{}) *Spy {
	expected := copyArgs(args)

	s.mu.Lock()
	s.matcher = func(actual ...interface{}) bool {
		return argsEqual(expected, actual)
	}
	s.expectedArgs = expected
	s.mu.Unlock()
	return s
}

// AndCallThrough lets every recorded dispatch reach the other listeners of the
// signal as well.
func (s *Spy) AndCallThrough() *Spy {
	return s.setPlan(plan{kind: planCallThrough})
}

// AndThrow makes every recorded dispatch fail with an *InjectedError that
// carries the given message.
func (s *Spy) AndThrow(message string) *Spy {
	return s.setPlan(plan{kind: planThrow, message: message})
}

// AndCallFake executes the given Listener with the arguments of every
// recorded dispatch. Any error of the fake is returned from the dispatch.
func (s *Spy) AndCallFake(fake signals.Listener) *Spy {
	if fake == nil {
		return s.setPlan(plan{kind: planNoop})
	}

	return s.setPlan(plan{kind: planCallFake, fake: fake})
}

func (s *Spy) setPlan(p plan) *Spy {
	s.mu.Lock()
	s.plan = p
	s.mu.Unlock()
	return s
}

func (s *Spy) onDispatch(args ...interface{}) error {
	recorded := copyArgs(args)

	s.mu.Lock()
	matcher, ignore := s.matcher, s.callingThru
	s.mu.Unlock()

	if ignore {
		// A memorizing signal replays its last dispatch when the Spy
		// subscribes again at the end of Spy.callThrough(…).
		return nil
	}

	matched := matcher(args...)

	s.mu.Lock()
	s.dispatches = append(s.dispatches, recorded)
	if matched {
		s.count++
	}
	sig, p, n := s.signal, s.plan, len(s.dispatches)
	s.mu.Unlock()

	s.logger.Debug("Recorded dispatch",
		zap.Stringer("signal", sig),
		zap.Int("args", len(args)),
		zap.Bool("matched", matched),
		zap.Int("dispatches", n),
	)

	sig.Halt()
	return s.execute(p, sig, args)
}

func (s *Spy) execute(p plan, sig Signal, args []interface{}) error {
	switch p.kind {
	case planCallThrough:
		return s.callThrough(sig, args)
	case planThrow:
		return &InjectedError{Message: p.message}
	case planCallFake:
		return p.fake(args...)
	default:
		return nil
	}
}

// callThrough delivers the arguments to all other listeners of the signal.
// The Spy unsubscribes while doing so and subscribes again afterwards.
func (s *Spy) callThrough(sig Signal, args []interface{}) error {
	s.mu.Lock()
	s.callingThru = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.callingThru = false
		s.mu.Unlock()
	}()

	s.Stop()

	var err error
	for _, b := range sig.Bindings() {
		err = b.Execute(args...)
		if err != nil {
			break
		}
	}

	return multierr.Append(err, s.Initialize())
}

// Count returns the number of recorded dispatches that satisfied the Matcher
// of the Spy at the time they were recorded.
func (s *Spy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Dispatches returns the arguments of all recorded dispatches.
func (s *Spy) Dispatches() [][]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDispatches(s.dispatches)
}

// Reset forgets all recorded dispatches.
func (s *Spy) Reset() {
	s.mu.Lock()
	s.dispatches = nil
	s.count = 0
	s.mu.Unlock()
}

// Signal returns the signal the Spy is spying on or nil if the Spy was created
// via NewSpyGroup(…) and has not been bound yet.
func (s *Spy) Signal() Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signal
}

// Active returns true while the Spy is subscribed to its signal.
func (s *Spy) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.binding != nil && s.binding.IsBound()
}

// String returns the description of the signal or the name of a Spy that is
// not bound yet.
func (s *Spy) String() string {
	s.mu.Lock()
	sig, name := s.signal, s.name
	s.mu.Unlock()

	if sig == nil {
		return name
	}

	return sig.String()
}

func (s *Spy) spiesOn(subject interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signal != nil && interface{}(s.signal) == subject
}

func copyArgs(args []interface{}) []interface{} {
	c := make([]interface{}, len(args))
	copy(c, args)
	return c
}

func copyDispatches(dispatches [][]interface{}) [][]interface{} {
	c := make([][]interface{}, len(dispatches))
	for i, d := range dispatches {
		c[i] = copyArgs(d)
	}
	return c
}
