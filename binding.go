package signals

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// A Binding is the subscription of a single Listener to a Signal. It is
// returned by all Signal.Add… functions and can be used to remove the
// Listener again.
type Binding struct {
	signal   *Signal
	listener Listener
	priority int
	once     bool
	active   *atomic.Bool
}

func newBinding(s *Signal, listener Listener, priority int, once bool) *Binding {
	return &Binding{
		signal:   s,
		listener: listener,
		priority: priority,
		once:     once,
		active:   atomic.NewBool(true),
	}
}

// Execute calls the Listener with the given arguments unless the Binding was
// deactivated via Binding.SetActive(false). Bindings that were added via
// Signal.AddOnce(…) are detached before their Listener runs. A panic inside
// the Listener is returned as error.
func (b *Binding) Execute(args ...interface{}) (err error) {
	if !b.Active() || b.listener == nil {
		return nil
	}

	if b.once {
		b.Detach()
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("listener panic: %v", r)
		}
	}()

	return b.listener(args...)
}

// Detach removes the Binding from its Signal. It returns false if the Binding
// was not bound anymore.
func (b *Binding) Detach() bool {
	if b.signal == nil {
		return false
	}

	return b.signal.Remove(b)
}

// IsBound returns true as long as the Binding is registered at its Signal.
func (b *Binding) IsBound() bool {
	return b.signal != nil && b.signal.Has(b)
}

// IsOnce returns true if the Binding is removed after its first execution.
func (b *Binding) IsOnce() bool {
	return b.once
}

// Priority returns the priority the Listener was added with.
func (b *Binding) Priority() int {
	return b.priority
}

// Active returns false if the Binding is currently ignoring dispatches.
func (b *Binding) Active() bool {
	return b.active != nil && b.active.Load()
}

// SetActive can be used to pause and resume a Binding without removing it.
func (b *Binding) SetActive(active bool) {
	b.active.Store(active)
}

func (b *Binding) String() string {
	return fmt.Sprintf("[SignalBinding isOnce:%t, isBound:%t, active:%t]", b.once, b.IsBound(), b.Active())
}
