package executor

import (
	"errors"
	"fmt"
	"reflect"

	"automap/internal/common"
	"automap/internal/plan"
)

var (
	// ErrNilConfiguration is returned by Compile for a nil configuration.
	ErrNilConfiguration = errors.New("automap(executor): nil configuration")
	// ErrUnsupported is returned when a member cannot be accessed on its owner type.
	ErrUnsupported = errors.New("automap(executor): unsupported member access")
	// ErrSourceType is returned when the source value is not of the bound source type.
	ErrSourceType = errors.New("automap(executor): source type mismatch")
	// ErrTargetType is returned when the destination value is not of the bound target type.
	ErrTargetType = errors.New("automap(executor): target type mismatch")
	// ErrNilTarget is returned for a destination that cannot be written through.
	ErrNilTarget = errors.New("automap(executor): nil target")
)

// Mapper is a compiled configuration. It is immutable and safe for concurrent use.
type Mapper struct {
	source  reflect.Type
	target  reflect.Type
	steps   []step
	ignored []string
}

type step struct {
	name    string
	read    reader
	convert converter
	write   writer
}

// Compile prepares a Mapper for cfg. Later changes to cfg do not affect it.
func Compile(cfg *plan.Configuration) (*Mapper, error) {
	if cfg == nil {
		return nil, ErrNilConfiguration
	}

	srcShape, dstShape := shape(cfg.Source()), shape(cfg.Target())

	m := &Mapper{
		source:  cfg.Source(),
		target:  cfg.Target(),
		ignored: cfg.Ignored(),
	}

	for _, mp := range cfg.Members() {
		if !mp.Verdict.Copy() {
			continue
		}

		read, err := newReader(srcShape, mp.Source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Name(), err)
		}

		write, err := newWriter(dstShape, mp.Target)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Name(), err)
		}

		convert, err := newConverter(mp.Verdict.Conversion, mp.Source.Type, mp.Target.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", cfg.Name(), mp.Target.Name, err)
		}

		m.steps = append(m.steps, step{
			name:    mp.Target.Name,
			read:    read,
			convert: convert,
			write:   write,
		})
	}

	return m, nil
}

// Source returns the bound source type.
func (m *Mapper) Source() reflect.Type {
	return m.source
}

// Target returns the bound destination type.
func (m *Mapper) Target() reflect.Type {
	return m.target
}

// Name returns "src->dst".
func (m *Mapper) Name() string {
	return common.PairName(m.source, m.target)
}

// Copied returns the names of copied members in destination order.
func (m *Mapper) Copied() []string {
	names := make([]string, len(m.steps))
	for i, s := range m.steps {
		names[i] = s.name
	}

	return names
}

// Ignored returns the names of excluded members in destination order.
func (m *Mapper) Ignored() []string {
	return append([]string(nil), m.ignored...)
}

// Apply copies every compiled member from src to dst and returns the written
// destination. src and dst must be values of exactly the bound types.
//
// A nil pointer or nil interface source copies nothing. A nil *T destination is
// allocated. A struct destination held by value is copied and the updated copy
// is returned.
func (m *Mapper) Apply(src, dst reflect.Value) (reflect.Value, error) {
	if !src.IsValid() || src.Type() != m.source {
		return dst, fmt.Errorf("%w: want %s, got %s", ErrSourceType, m.source, typeOf(src))
	}

	if !dst.IsValid() || dst.Type() != m.target {
		return dst, fmt.Errorf("%w: want %s, got %s", ErrTargetType, m.target, typeOf(dst))
	}

	out, work, err := writable(dst)
	if err != nil {
		return dst, err
	}

	from, ok := readable(src)
	if !ok || !work.IsValid() {
		return out, nil
	}

	for _, s := range m.steps {
		v, ok := s.read(from)
		if !ok {
			continue
		}

		s.write(work, s.convert(v))
	}

	return out, nil
}

// shape removes one level of pointer indirection, as surface resolution does.
func shape(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}

// readable returns the value members are read from, or false when there is none.
func readable(src reflect.Value) (reflect.Value, bool) {
	if src.Kind() == reflect.Pointer {
		if src.IsNil() {
			return reflect.Value{}, false
		}

		src = src.Elem()
	}

	if src.Kind() == reflect.Interface && src.IsNil() {
		return reflect.Value{}, false
	}

	return src, true
}

// writable returns the value handed back to the caller and the value members are
// written to. work is invalid when the destination shape has no members.
func writable(dst reflect.Value) (out, work reflect.Value, err error) {
	switch dst.Kind() {
	case reflect.Pointer:
		out = dst
		if dst.IsNil() {
			if dst.Type().Elem().Kind() == reflect.Interface {
				return dst, reflect.Value{}, ErrNilTarget
			}

			out = reflect.New(dst.Type().Elem())
		}

		work = out.Elem()
	case reflect.Struct:
		out = reflect.New(dst.Type()).Elem()
		out.Set(dst)
		work = out
	case reflect.Interface:
		out, work = dst, dst
	default:
		return dst, reflect.Value{}, nil
	}

	if work.Kind() == reflect.Interface && work.IsNil() {
		return dst, reflect.Value{}, ErrNilTarget
	}

	if work.Kind() != reflect.Struct && work.Kind() != reflect.Interface {
		return out, reflect.Value{}, nil
	}

	return out, work, nil
}

func typeOf(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}

	return v.Type().String()
}
