package executor

import (
	"fmt"
	"reflect"

	"automap/internal/match"
)

// converter turns a source member value into a value assignable to the destination member.
type converter func(v reflect.Value) reflect.Value

func identity(v reflect.Value) reflect.Value {
	return v
}

func newConverter(c match.Conversion, src, dst reflect.Type) (converter, error) {
	switch c {
	case match.ConversionAssign:
		return identity, nil
	case match.ConversionWrap:
		w, ok := match.WrapperOf(dst)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not an optional type", ErrUnsupported, dst)
		}

		return wrapper(w), nil
	case match.ConversionUnwrap:
		w, ok := match.WrapperOf(src)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not an optional type", ErrUnsupported, src)
		}

		return unwrapper(w), nil
	default:
		return nil, fmt.Errorf("%w: conversion %s", ErrUnsupported, c)
	}
}

func wrapper(w match.Wrapper) converter {
	switch w.Kind {
	case match.WrapperSQLNull:
		value, valid := sqlNullFields(w.Type)

		return func(v reflect.Value) reflect.Value {
			n := reflect.New(w.Type).Elem()
			n.Field(value).Set(v)
			n.Field(valid).SetBool(true)

			return n
		}
	default:
		return func(v reflect.Value) reflect.Value {
			p := reflect.New(w.Inner)
			p.Elem().Set(v)

			return p
		}
	}
}

// unwrapper yields the inner value, or the zero value when the wrapper is empty.
func unwrapper(w match.Wrapper) converter {
	zero := reflect.Zero(w.Inner)

	switch w.Kind {
	case match.WrapperSQLNull:
		value, valid := sqlNullFields(w.Type)

		return func(v reflect.Value) reflect.Value {
			if !v.Field(valid).Bool() {
				return zero
			}

			return v.Field(value)
		}
	default:
		return func(v reflect.Value) reflect.Value {
			if v.IsNil() {
				return zero
			}

			return v.Elem()
		}
	}
}

func sqlNullFields(t reflect.Type) (value, valid int) {
	v, _ := t.FieldByName(match.SQLNullValue)
	ok, _ := t.FieldByName(match.SQLNullPresent)

	return v.Index[0], ok.Index[0]
}
