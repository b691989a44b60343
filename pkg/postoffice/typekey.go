package postoffice

import "reflect"

// TypeKey identifies a letter type inside a PostOffice and classifies
// arbitrary values against it.
//
// Identity is the reflect.Type of the letter, never its printed name: two
// distinct types (including different instantiations of a generic type that
// print identically) always produce different keys.
type TypeKey struct {
	typ  reflect.Type
	test func(v any) bool
}

// KeyFor returns the key for letters of type T.
func KeyFor[T any]() TypeKey {
	return TypeKey{
		typ: reflect.TypeFor[T](),
		test: func(v any) bool {
			_, ok := v.(T)
			return ok
		},
	}
}

// Name returns a human-readable name of the type. It is meant for logs only
// and is not guaranteed to be unique.
func (k TypeKey) Name() string {
	if k.typ == nil {
		return "<nil>"
	}
	return k.typ.String()
}

// Type returns the underlying reflect.Type.
func (k TypeKey) Type() reflect.Type { return k.typ }

// Matches reports whether v is a T, or implements T when T is an interface.
// A nil value never matches.
func (k TypeKey) Matches(v any) bool {
	if k.test == nil || v == nil {
		return false
	}
	return k.test(v)
}

// Equal reports whether both keys identify the same type.
func (k TypeKey) Equal(other TypeKey) bool { return k.typ == other.typ }

// IsZero reports whether the key was not produced by KeyFor.
func (k TypeKey) IsZero() bool { return k.typ == nil }
