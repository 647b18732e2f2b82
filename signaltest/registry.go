package signaltest

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// A Registry keeps track of all spies that were created through it so
// assertions can be made directly about a signal instead of its Spy.
type Registry struct {
	logger *zap.Logger
	t      TestingT

	mu    sync.Mutex
	spies []*Spy // in order of creation
}

// Default is the Registry that is used by all package level functions.
var Default = NewRegistry(nil)

// NewRegistry creates a new Registry. If t is not nil, the Registry sends all
// logs through it and stops all of its spies when the test has completed.
func NewRegistry(t TestingT) *Registry {
	r := &Registry{
		logger: zap.NewNop(),
		t:      t,
	}

	if t != nil {
		r.logger = zaptest.NewLogger(t)
		t.Cleanup(r.StopAll)
	}

	return r
}

// SpyOn creates a new Spy on the given signal and registers it. If matchers
// are given, only dispatches that satisfy all of them are counted.
func (r *Registry) SpyOn(sig Signal, matchers ...Matcher) (*Spy, error) {
	if isNil(sig) {
		return nil, errors.Wrap(ErrInvalidArgument, "SpyOn requires a signal as a parameter")
	}

	s := newSpy(r.logger.Named("spy"), sig, matchers)
	err := s.Initialize()
	if err != nil {
		return nil, err
	}

	r.Register(s)
	return s, nil
}

// MustSpyOn is like Registry.SpyOn(…) but fails the test of the Registry
// immediately if the Spy cannot be created. It panics if the Registry was
// created without a TestingT.
func (r *Registry) MustSpyOn(sig Signal, matchers ...Matcher) *Spy {
	s, err := r.SpyOn(sig, matchers...)
	if err == nil {
		return s
	}

	if r.t == nil {
		panic(err)
	}

	r.t.Helper()
	r.t.Errorf("Failed to spy on signal: %v", err)
	r.t.FailNow()
	return nil
}

// Register adds a Spy to the Registry. A signal may have more than one Spy
// in which case Registry.Resolve(…) returns the one that was registered first.
func (r *Registry) Register(s *Spy) {
	r.mu.Lock()
	r.spies = append(r.spies, s)
	n := len(r.spies)
	r.mu.Unlock()

	r.logger.Debug("Registered spy",
		zap.Stringer("spy", s),
		zap.Int("spies", n),
	)
}

// Resolve returns the Spy for the given subject. The subject is either a Spy
// which is returned as is, or a signal in which case the first registered
// Spy on this signal is returned. Resolve returns nil for all other values.
func (r *Registry) Resolve(subject interface{}) *Spy {
	switch v := subject.(type) {
	case *Spy:
		return v
	case interface{ Dispatch(...interface{}) error }:
		if !reflect.TypeOf(v).Comparable() {
			return nil
		}
	default:
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.spies {
		if s.spiesOn(subject) {
			return s
		}
	}

	return nil
}

// Spies returns all registered spies in order of their creation.
func (r *Registry) Spies() []*Spy {
	r.mu.Lock()
	defer r.mu.Unlock()

	spies := make([]*Spy, len(r.spies))
	copy(spies, r.spies)
	return spies
}

// StopAll stops all registered spies. The spies stay registered.
func (r *Registry) StopAll() {
	for _, s := range r.Spies() {
		s.Stop()
	}
}

// Dispatched resolves the subject to a Spy and checks it via Spy.Dispatched(…).
func (r *Registry) Dispatched(subject interface{}, expectedCount ...int) (Result, error) {
	s, err := r.spyFor(subject)
	if err != nil {
		return Result{}, err
	}

	return s.Dispatched(expectedCount...), nil
}

// DispatchedWith resolves the subject to a Spy and checks it via
// Spy.DispatchedWith(…).
func (r *Registry) DispatchedWith(subject interface{}, expectedArgs ...interface{}) (Result, error) {
	s, err := r.spyFor(subject)
	if err != nil {
		return Result{}, err
	}

	return s.DispatchedWith(expectedArgs...), nil
}

func (r *Registry) spyFor(subject interface{}) (*Spy, error) {
	s := r.Resolve(subject)
	if s == nil {
		return nil, errors.Wrapf(ErrConfiguration, "Expected a SignalSpy but got %T", subject)
	}

	return s, nil
}

func isNil(sig Signal) bool {
	if sig == nil {
		return true
	}

	v := reflect.ValueOf(sig)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
