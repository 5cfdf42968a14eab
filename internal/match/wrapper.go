package match

import (
	"reflect"
	"strings"
)

// WrapperKind identifies the representation of an optional value.
type WrapperKind int

const (
	_ WrapperKind = iota

	// WrapperPointer is *T; nil means absent.
	WrapperPointer
	// WrapperSQLNull is database/sql.Null[T]; Valid=false means absent.
	WrapperSQLNull
)

const (
	sqlPkgPath     = "database/sql"
	sqlNullPrefix  = "Null["
	SQLNullValue   = "V"
	SQLNullPresent = "Valid"
)

// Wrapper describes an optional-value type and the value type it carries.
type Wrapper struct {
	Kind  WrapperKind
	Type  reflect.Type
	Inner reflect.Type
}

// WrapperOf reports whether t is an optional-value wrapper and returns its description.
func WrapperOf(t reflect.Type) (Wrapper, bool) {
	if t == nil {
		return Wrapper{}, false
	}

	if t.Kind() == reflect.Pointer {
		return Wrapper{Kind: WrapperPointer, Type: t, Inner: t.Elem()}, true
	}

	if inner, ok := sqlNullInner(t); ok {
		return Wrapper{Kind: WrapperSQLNull, Type: t, Inner: inner}, true
	}

	return Wrapper{}, false
}

// IsWrapped reports whether t is an optional-value wrapper.
func IsWrapped(t reflect.Type) bool {
	_, ok := WrapperOf(t)
	return ok
}

// sqlNullInner matches instantiations of the generic sql.Null[T].
func sqlNullInner(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Struct || t.PkgPath() != sqlPkgPath || !strings.HasPrefix(t.Name(), sqlNullPrefix) {
		return nil, false
	}

	v, ok := t.FieldByName(SQLNullValue)
	if !ok {
		return nil, false
	}

	valid, ok := t.FieldByName(SQLNullPresent)
	if !ok || valid.Type.Kind() != reflect.Bool {
		return nil, false
	}

	return v.Type, true
}
