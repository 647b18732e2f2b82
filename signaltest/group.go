package signaltest

import (
	"io"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// A SpyGroup maps names to spies. It is created via NewSpyGroup(…) to set up
// many spies for a test fixture at once.
type SpyGroup map[string]*Spy

// NewSpyGroup creates a registered Spy for each of the given names. The names
// must not be empty and must be unique within one call.
//
// The spies of a SpyGroup are not bound to any signal yet. They can be passed
// around like any Spy but only start recording after they have been bound to
// a signal via Spy.Bind(…). Until then, the name is used as description in
// assertion messages.
func (r *Registry) NewSpyGroup(names []string) (SpyGroup, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "NewSpyGroup requires a non-empty list of names to create spies for")
	}

	var errs error
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		switch {
		case name == "":
			errs = multierr.Append(errs, errors.Errorf("name %d is empty", i+1))
		case seen[name]:
			errs = multierr.Append(errs, errors.Errorf("name %q is not unique", name))
		}
		seen[name] = true
	}

	if errs != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "NewSpyGroup received invalid names (%v)", errs)
	}

	group := make(SpyGroup, len(names))
	for _, name := range names {
		s := newStub(r.logger.Named("spy"), name)
		r.Register(s)
		group[name] = s
	}

	r.logger.Debug("Created spy group", zap.Strings("names", names))
	return group, nil
}

// LoadSpyGroup reads a YAML list of names and passes it to NewSpyGroup(…):
//
//	- saved
//	- loaded
//	- failed
func (r *Registry) LoadSpyGroup(in io.Reader) (SpyGroup, error) {
	var names []string
	err := yaml.NewDecoder(in).Decode(&names)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "LoadSpyGroup requires a YAML list of names (%v)", err)
	}

	return r.NewSpyGroup(names)
}

// Names returns the sorted names of all spies in the group.
func (g SpyGroup) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Stop stops all spies of the group.
func (g SpyGroup) Stop() {
	for _, s := range g {
		s.Stop()
	}
}
