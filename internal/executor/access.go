package executor

import (
	"fmt"
	"reflect"

	"automap/internal/surface"
)

// reader fetches a member value; false means the member is unreachable
// (e.g. behind a nil embedded pointer).
type reader func(owner reflect.Value) (reflect.Value, bool)

// writer stores a member value into an addressable struct or a non-nil interface.
type writer func(owner reflect.Value, v reflect.Value)

func newReader(owner reflect.Type, m surface.Member) (reader, error) {
	switch m.Kind {
	case surface.MemberField:
		index := m.Index

		return func(v reflect.Value) (reflect.Value, bool) {
			f, err := v.FieldByIndexErr(index)
			if err != nil {
				return reflect.Value{}, false
			}

			return f, true
		}, nil
	case surface.MemberAccessor:
		method, err := methodIndex(owner, m.Getter)
		if err != nil {
			return nil, err
		}

		return func(v reflect.Value) (reflect.Value, bool) {
			return v.Method(method).Call(nil)[0], true
		}, nil
	default:
		return nil, fmt.Errorf("%w: member %s", ErrUnsupported, m.Name)
	}
}

func newWriter(owner reflect.Type, m surface.Member) (writer, error) {
	switch m.Kind {
	case surface.MemberField:
		index := m.Index

		return func(v reflect.Value, x reflect.Value) {
			fieldByIndexAlloc(v, index).Set(x)
		}, nil
	case surface.MemberAccessor:
		method, err := methodIndex(owner, m.Setter)
		if err != nil {
			return nil, err
		}

		return func(v reflect.Value, x reflect.Value) {
			v.Method(method).Call([]reflect.Value{x})
		}, nil
	default:
		return nil, fmt.Errorf("%w: member %s", ErrUnsupported, m.Name)
	}
}

// methodIndex resolves a method on an interface owner to its index in the
// method set, so calls skip the by-name lookup.
func methodIndex(owner reflect.Type, name string) (int, error) {
	if owner == nil || owner.Kind() != reflect.Interface {
		return 0, fmt.Errorf("%w: accessor %s on %v", ErrUnsupported, name, owner)
	}

	method, ok := owner.MethodByName(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s has no method %s", ErrUnsupported, owner, name)
	}

	return method.Index, nil
}

// fieldByIndexAlloc is FieldByIndex that allocates nil embedded struct pointers
// on the way down.
func fieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v
}
