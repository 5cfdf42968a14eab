package common

import (
	"path"
	"reflect"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// TypeName returns "alias.Name" for a named type, or the reflect string form for
// unnamed and builtin types. It is the key used for type pairs in override files
// and log fields.
func TypeName(t reflect.Type) string {
	if t == nil {
		return UnknownStr
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return PkgAlias(t.PkgPath()) + "." + t.Name()
}

// PairName formats a source/target pair the way diagnostics print it.
func PairName(src, dst reflect.Type) string {
	return TypeName(src) + "->" + TypeName(dst)
}

// QualifiedName is TypeName with the full import path instead of the alias,
// e.g. "example.com/app/model.User" or "*example.com/app/model.User".
// It tells apart types whose packages share a base name.
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return UnknownStr
	}

	if t.Kind() == reflect.Pointer && t.Name() == "" {
		return "*" + QualifiedName(t.Elem())
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
