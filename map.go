package automap

import (
	"iter"
	"reflect"
	"slices"
	"sync/atomic"

	"automap/internal/executor"
)

// Map copies src into dst with the cached mapper for (I, O) and returns the
// written destination. A nil m uses Default.
//
// When O is a pointer a nil dst is allocated; when O is a struct value the
// updated copy is returned.
func Map[I, O any](m *Mapper, src I, dst O) (O, error) {
	c, err := lookup[I, O](m)
	if err != nil {
		return dst, err
	}

	return MapUsing(c, src, dst)
}

// MapWith compiles cfg and applies it, bypassing the cache.
func MapWith[I, O any](cfg *Configuration, src I, dst O) (O, error) {
	c, err := executor.Compile(cfg)
	if err != nil {
		return dst, err
	}

	return MapUsing(c, src, dst)
}

// MapUsing applies an already compiled mapper.
func MapUsing[I, O any](c *Compiled, src I, dst O) (O, error) {
	if c == nil {
		return dst, ErrNilCompiled
	}

	out, err := c.Apply(reflect.ValueOf(&src).Elem(), reflect.ValueOf(&dst).Elem())
	if err != nil {
		return dst, err
	}

	return out.Interface().(O), nil
}

// Configure builds a fresh configuration for (I, O), bypassing the cache.
// Narrow it with Ignore and run it with MapWith.
func Configure[I, O any](m *Mapper) *Configuration {
	if m == nil {
		m = Default()
	}

	return m.Configuration(reflect.TypeFor[I](), reflect.TypeFor[O]())
}

// MapSeq lazily maps every element of seq into a destination obtained from
// factory. The mapper is resolved once, when iteration starts; factory runs
// once per element, as the element is consumed. Order is preserved.
//
// The returned sequence is single use: ranging over it again yields
// ErrSequenceConsumed. Iteration stops after the first error.
func MapSeq[I, O any](m *Mapper, seq iter.Seq[I], factory func() O) iter.Seq2[O, error] {
	var used atomic.Bool

	return func(yield func(O, error) bool) {
		var zero O

		if used.Swap(true) {
			yield(zero, ErrSequenceConsumed)
			return
		}

		c, err := lookup[I, O](m)
		if err != nil {
			yield(zero, err)
			return
		}

		for in := range seq {
			out, err := MapUsing(c, in, factory())
			if !yield(out, err) || err != nil {
				return
			}
		}
	}
}

// MapSlice maps every element of in. It stops at the first error.
func MapSlice[I, O any](m *Mapper, in []I, factory func() O) ([]O, error) {
	out := make([]O, 0, len(in))

	for o, err := range MapSeq(m, slices.Values(in), factory) {
		if err != nil {
			return out, err
		}

		out = append(out, o)
	}

	return out, nil
}

func lookup[I, O any](m *Mapper) (*Compiled, error) {
	if m == nil {
		m = Default()
	}

	return m.Lookup(reflect.TypeFor[I](), reflect.TypeFor[O]())
}
