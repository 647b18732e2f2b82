package signals

import (
	"reflect"

	"github.com/pkg/errors"
)

// A Listener receives the arguments of each dispatch of the Signal it is added
// to. Returning an error stops the dispatch and the error is returned from
// Signal.Dispatch(…).
type Listener func(args ...interface{}) error

// NewListener adapts any function to a Listener. The function signature must
// comply with the following rules:
//
//   // Parameters are filled with the dispatch arguments by position. Missing
//   // or nil arguments are passed as zero values and any extra arguments are
//   // dropped unless the function is variadic.
//   func(a int, b string)
//   func(args ...interface{})
//
//   // You can optionally return a single error value. Returning any other
//   // type or returning more than one value will lead to an error.
//   func(a int) error
//
// Numeric arguments are converted to the numeric type of the parameter. Any
// other argument that cannot be assigned to its parameter makes the Listener
// return an error when it is called.
func NewListener(fun interface{}) (Listener, error) {
	switch f := fun.(type) {
	case nil:
		return nil, errors.New("listener is nil")
	case Listener:
		return f, nil
	case func(...interface{}) error:
		return f, nil
	case func(...interface{}):
		return func(args ...interface{}) error {
			f(args...)
			return nil
		}, nil
	case func():
		return func(...interface{}) error {
			f()
			return nil
		}, nil
	}

	listener := reflect.ValueOf(fun)
	listenerType := listener.Type()
	if listenerType.Kind() != reflect.Func {
		return nil, errors.Errorf("listener is no function but %T", fun)
	}

	if listener.IsNil() {
		return nil, errors.New("listener is nil")
	}

	returnsErr, err := checkListenerReturnValues(listenerType)
	if err != nil {
		return nil, err
	}

	return newListenerFunc(listener, returnsErr), nil
}

func checkListenerReturnValues(listenerFunc reflect.Type) (returnsError bool, err error) {
	switch listenerFunc.NumOut() {
	case 0:
		return false, nil
	case 1:
		errorInterface := reflect.TypeOf((*error)(nil)).Elem()
		if !listenerFunc.Out(0).Implements(errorInterface) {
			err = errors.New("if the listener has a return value it must implement the error interface")
			return
		}
		return true, nil
	default:
		return false, errors.New("listener has more than one return value")
	}
}

func newListenerFunc(listener reflect.Value, returnsErr bool) Listener {
	listenerType := listener.Type()
	return func(args ...interface{}) error {
		in, err := listenerArgs(listenerType, args)
		if err != nil {
			return err
		}

		results := listener.Call(in)
		if returnsErr && !results[0].IsNil() {
			return results[0].Interface().(error)
		}

		return nil
	}
}

// listenerArgs maps the dispatch arguments onto the parameters of a listener
// function. The result can be passed directly to reflect.Value.Call which
// packs the trailing values into the variadic slice itself.
func listenerArgs(listenerFunc reflect.Type, args []interface{}) ([]reflect.Value, error) {
	numParams := listenerFunc.NumIn()
	fixed := numParams
	if listenerFunc.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, numParams)
	for i := 0; i < fixed; i++ {
		v, err := argValue(listenerFunc.In(i), args, i)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	if listenerFunc.IsVariadic() {
		elem := listenerFunc.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := argValue(elem, args, i)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}

	return in, nil
}

func argValue(typ reflect.Type, args []interface{}, i int) (reflect.Value, error) {
	if i >= len(args) || args[i] == nil {
		return reflect.Zero(typ), nil
	}

	v := reflect.ValueOf(args[i])
	switch {
	case v.Type().AssignableTo(typ):
		return v, nil
	case isNumeric(v.Kind()) && isNumeric(typ.Kind()):
		return v.Convert(typ), nil
	default:
		return reflect.Value{}, errors.Errorf("listener argument %d: cannot use %T as %s", i+1, args[i], typ)
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
