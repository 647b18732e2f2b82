package signaltest

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_NewSpyGroup(t *testing.T) {
	r := NewRegistry(t)
	group, err := r.NewSpyGroup([]string{"saved", "loaded", "failed"})
	require.NoError(t, err)

	assert.Equal(t, []string{"failed", "loaded", "saved"}, group.Names())
	assert.Len(t, r.Spies(), 3)

	for name, spy := range group {
		assert.Equal(t, name, spy.String())
		assert.Nil(t, spy.Signal())
		assert.False(t, spy.Active())
		assert.Same(t, spy, r.Resolve(spy))
	}
}

func TestRegistry_NewSpyGroup_InvalidNames(t *testing.T) {
	cases := map[string]struct {
		names []string
		err   string
	}{
		"nil": {
			names: nil,
			err:   "NewSpyGroup requires a non-empty list of names to create spies for: invalid argument",
		},
		"empty": {
			names: []string{},
			err:   "NewSpyGroup requires a non-empty list of names to create spies for: invalid argument",
		},
		"empty_name": {
			names: []string{"saved", ""},
			err:   "NewSpyGroup received invalid names (name 2 is empty): invalid argument",
		},
		"duplicate": {
			names: []string{"saved", "loaded", "saved"},
			err:   `NewSpyGroup received invalid names (name "saved" is not unique): invalid argument`,
		},
		"many": {
			names: []string{"", "saved", "saved"},
			err:   `NewSpyGroup received invalid names (name 1 is empty; name "saved" is not unique): invalid argument`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewRegistry(t)
			group, err := r.NewSpyGroup(c.names)
			assert.Nil(t, group)
			assert.EqualError(t, err, c.err)
			assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
			assert.Empty(t, r.Spies())
		})
	}
}

func TestSpyGroup_Messages(t *testing.T) {
	r := NewRegistry(t)
	group, err := r.NewSpyGroup([]string{"saved"})
	require.NoError(t, err)

	res, err := r.Dispatched(group["saved"])
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Equal(t, "Expected saved to have been dispatched", res.Message)

	res = group["saved"].DispatchedWith("bob")
	assert.Equal(t, "Expected saved not to have been dispatched with (bob) but was not dispatched", res.NegatedMessage)
}

func TestSpyGroup_Bind(t *testing.T) {
	r := NewRegistry(t)
	group, err := r.NewSpyGroup([]string{"saved", "loaded"})
	require.NoError(t, err)

	saved := newTestSignal(t)
	var l listenerSpy
	_, err = saved.Add(l.listen)
	require.NoError(t, err)

	spy := group["saved"]
	require.NoError(t, spy.Bind(saved))
	assert.True(t, spy.Active())
	assert.Equal(t, "[Signal active:true numListeners:2]", spy.String())

	require.NoError(t, saved.Dispatch("bob"))
	assert.False(t, l.called())
	assert.True(t, spy.DispatchedWith("bob").Passed)
	assert.True(t, r.AssertDispatched(t, saved))

	err = spy.Bind(newTestSignal(t))
	assert.EqualError(t, err, `spy "saved" is already bound to a signal: invalid argument`)

	err = group["loaded"].Bind(nil)
	assert.EqualError(t, err, "Bind requires a signal as a parameter: invalid argument")
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))

	group.Stop()
	assert.False(t, spy.Active())
	assert.Equal(t, 1, saved.NumListeners())
}

func TestRegistry_LoadSpyGroup(t *testing.T) {
	r := NewRegistry(t)
	group, err := r.LoadSpyGroup(strings.NewReader(`
- saved
- loaded
- failed
`))

	require.NoError(t, err)
	assert.Equal(t, []string{"failed", "loaded", "saved"}, group.Names())
}

func TestRegistry_LoadSpyGroup_Errors(t *testing.T) {
	cases := map[string]struct {
		yaml string
		err  string
	}{
		"map": {
			yaml: "saved: true",
			err:  "LoadSpyGroup requires a YAML list of names",
		},
		"empty_document": {
			yaml: "",
			err:  "LoadSpyGroup requires a YAML list of names (EOF)",
		},
		"empty_list": {
			yaml: "[]",
			err:  "NewSpyGroup requires a non-empty list of names",
		},
		"duplicate": {
			yaml: "[saved, saved]",
			err:  `name "saved" is not unique`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewRegistry(t)
			group, err := r.LoadSpyGroup(strings.NewReader(c.yaml))
			assert.Nil(t, group)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.err)
			assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
		})
	}
}

func TestDefault_SpyGroup(t *testing.T) {
	r := useDefault(t)

	group, err := NewSpyGroup([]string{"saved"})
	require.NoError(t, err)
	assert.Equal(t, []*Spy{group["saved"]}, r.Spies())

	group, err = LoadSpyGroup(strings.NewReader("[loaded]"))
	require.NoError(t, err)
	assert.Len(t, r.Spies(), 2)
	assert.Equal(t, []string{"loaded"}, group.Names())
}
