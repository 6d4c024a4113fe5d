package ioc

import "reflect"

// EnumerableOf[E] is the wire-level marker spec §4.5 calls "a distinct
// request shape for an enumerable of E": resolving its reflect.Type
// through a Resolver returns one resolved instance for every Descriptor
// registered for E, in registration order, instead of just the last one.
//
// The zero-length array field is the trick that makes E recoverable from
// a plain reflect.Type: reflect cannot enumerate a generic type's type
// arguments directly, but Field(0).Type is the concrete array type
// [0]E, and its Elem() is E.
type EnumerableOf[E any] struct {
	_ [0]E
}

func enumerableType[E any]() reflect.Type {
	return reflect.TypeOf(EnumerableOf[E]{})
}

// isEnumerableType reports whether t is some EnumerableOf[E] and, if so,
// returns E's reflect.Type.
func isEnumerableType(t reflect.Type) (elem reflect.Type, ok bool) {
	if t.Kind() != reflect.Struct || t.NumField() != 1 {
		return nil, false
	}
	f := t.Field(0)
	if f.Name != "_" || f.Type.Kind() != reflect.Array || f.Type.Len() != 0 {
		return nil, false
	}
	return f.Type.Elem(), true
}

// ResolveAll resolves every Descriptor registered for E, in registration
// order. An empty, non-nil slice is returned when nothing is registered;
// it never fails with ErrNotRegistered the way Resolve[E] would.
func ResolveAll[E any](r Resolver) ([]E, error) {
	v, err := r.Resolve(enumerableType[E]())
	if err != nil {
		return nil, err
	}
	raw, _ := v.([]any)
	out := make([]E, 0, len(raw))
	for _, item := range raw {
		typed, ok := item.(E)
		if !ok {
			return nil, &ErrFactoryFailure{ServiceType: typeOf[E](), Err: errNotAssignable(item, typeOf[E]())}
		}
		out = append(out, typed)
	}
	return out, nil
}
