package signals

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// DefaultPriority is the priority of all listeners that are added via
// Signal.Add(…) or Signal.AddOnce(…).
const DefaultPriority = 0

// A Signal is a synchronous event emitter. Listeners are executed in order of
// their priority (highest first) and, within the same priority, in the order
// in which they were added. Any listener can stop the delivery of the current
// dispatch to the remaining listeners by calling Signal.Halt().
type Signal struct {
	logger   *zap.Logger
	memorize bool

	mu         sync.Mutex    // mu protects all fields below
	bindings   []*Binding    // sorted by priority, highest first
	active     bool          // inactive signals ignore dispatches
	disposed   bool          // set by Signal.Dispose()
	prevArgs   []interface{} // arguments of the last dispatch if memorize is set
	dispatched bool          // true once prevArgs holds a memorized dispatch

	propagate *atomic.Bool // reset at the start of each dispatch
}

// New creates a new active Signal without any listeners.
func New(opts ...Option) *Signal {
	s := &Signal{
		logger:    zap.NewNop(),
		active:    true,
		propagate: atomic.NewBool(true),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add registers a listener with the DefaultPriority. See NewListener for all
// accepted function signatures.
func (s *Signal) Add(listener interface{}) (*Binding, error) {
	return s.add(listener, DefaultPriority, false)
}

// AddOnce registers a listener with the DefaultPriority that is removed
// automatically after it was executed once.
func (s *Signal) AddOnce(listener interface{}) (*Binding, error) {
	return s.add(listener, DefaultPriority, true)
}

// AddWithPriority registers a listener with the given priority. Listeners with
// a higher priority are executed before listeners with a lower priority.
func (s *Signal) AddWithPriority(listener interface{}, priority int) (*Binding, error) {
	return s.add(listener, priority, false)
}

// AddOnceWithPriority combines Signal.AddOnce(…) and Signal.AddWithPriority(…).
func (s *Signal) AddOnceWithPriority(listener interface{}, priority int) (*Binding, error) {
	return s.add(listener, priority, true)
}

func (s *Signal) add(fun interface{}, priority int, once bool) (*Binding, error) {
	listener, err := NewListener(fun)
	if err != nil {
		return nil, errors.Wrap(err, firstExternalCaller())
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil, ErrDisposed
	}

	b := newBinding(s, listener, priority, once)
	s.insert(b)
	n := len(s.bindings)
	replay := s.memorize && s.dispatched
	prevArgs := s.prevArgs
	s.mu.Unlock()

	s.logger.Debug("Adding listener",
		zap.Int("priority", priority),
		zap.Bool("once", once),
		zap.Int("listeners", n),
	)

	if replay {
		return b, b.Execute(prevArgs...)
	}

	return b, nil
}

// insert adds the binding after all bindings with the same or a higher
// priority. The caller must hold s.mu.
func (s *Signal) insert(b *Binding) {
	i := len(s.bindings)
	for i > 0 && s.bindings[i-1].priority < b.priority {
		i--
	}

	s.bindings = append(s.bindings, nil)
	copy(s.bindings[i+1:], s.bindings[i:])
	s.bindings[i] = b
}

// Remove unsubscribes the listener of the given Binding. It returns false if
// the Binding was not registered at this Signal.
func (s *Signal) Remove(b *Binding) bool {
	s.mu.Lock()
	i := s.indexOf(b)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	s.bindings = append(s.bindings[:i], s.bindings[i+1:]...)
	n := len(s.bindings)
	s.mu.Unlock()

	s.logger.Debug("Removed listener",
		zap.Int("priority", b.priority),
		zap.Int("listeners", n),
	)

	return true
}

// RemoveAll unsubscribes all listeners.
func (s *Signal) RemoveAll() {
	s.mu.Lock()
	s.bindings = nil
	s.mu.Unlock()
}

// Has returns true if the Binding is registered at this Signal.
func (s *Signal) Has(b *Binding) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(b) >= 0
}

func (s *Signal) indexOf(b *Binding) int {
	for i, other := range s.bindings {
		if other == b {
			return i
		}
	}

	return -1
}

// NumListeners returns the number of registered listeners.
func (s *Signal) NumListeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bindings)
}

// Bindings returns a copy of all registered bindings in the order in which
// they are executed on dispatch.
func (s *Signal) Bindings() []*Binding {
	s.mu.Lock()
	defer s.mu.Unlock()

	bindings := make([]*Binding, len(s.bindings))
	copy(bindings, s.bindings)
	return bindings
}

// Halt stops the delivery of the current dispatch to all listeners that have
// not been executed yet. It is meant to be called from within a listener.
func (s *Signal) Halt() {
	s.propagate.Store(false)
}

// Dispatch synchronously executes all listeners with the given arguments.
// Listeners that are added or removed while the dispatch is running do not
// affect the current dispatch. If a listener returns an error (or panics) the
// dispatch stops and the error is returned.
func (s *Signal) Dispatch(args ...interface{}) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}

	if !s.active {
		s.mu.Unlock()
		return nil
	}

	if s.memorize {
		s.prevArgs = args
		s.dispatched = true
	}

	bindings := make([]*Binding, len(s.bindings))
	copy(bindings, s.bindings)
	s.mu.Unlock()

	s.logger.Debug("Dispatching signal",
		zap.Int("args", len(args)),
		zap.Int("listeners", len(bindings)),
	)

	s.propagate.Store(true)
	for _, b := range bindings {
		if !s.propagate.Load() {
			s.logger.Debug("Dispatch was halted")
			break
		}

		err := b.Execute(args...)
		if err != nil {
			s.logger.Debug("Listener failed", zap.Error(err))
			return err
		}
	}

	return nil
}

// Forget drops the memorized arguments of the last dispatch.
func (s *Signal) Forget() {
	s.mu.Lock()
	s.prevArgs = nil
	s.dispatched = false
	s.mu.Unlock()
}

// Dispose removes all listeners and forgets the memorized arguments. Any
// further call to Signal.Add… or Signal.Dispatch(…) returns ErrDisposed.
func (s *Signal) Dispose() {
	s.mu.Lock()
	s.bindings = nil
	s.prevArgs = nil
	s.dispatched = false
	s.disposed = true
	s.mu.Unlock()
}

// Active returns false if the Signal currently ignores all dispatches.
func (s *Signal) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetActive can be used to pause and resume the Signal. While a Signal is not
// active, Signal.Dispatch(…) returns immediately without executing any
// listener.
func (s *Signal) SetActive(active bool) {
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()
}

// String returns a short description of the Signal which is also used in the
// messages of failed assertions (e.g. "[Signal active:true numListeners:1]").
func (s *Signal) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("[Signal active:%t numListeners:%d]", s.active, len(s.bindings))
}
