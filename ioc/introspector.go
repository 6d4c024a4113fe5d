package ioc

import (
	"fmt"
	"reflect"
)

// Constructor is one way to build an implementation type: an ordered list
// of dependency types plus the reflected function that builds the
// instance from arguments resolved for those types, in order.
type Constructor struct {
	ParamTypes []reflect.Type
	fn         reflect.Value
}

func (c Constructor) invoke(args []reflect.Value) (reflect.Value, error) {
	out := c.fn.Call(args)
	switch len(out) {
	case 1:
		return out[0], nil
	case 2:
		if errVal := out[1]; !errVal.IsNil() {
			return reflect.Value{}, errVal.Interface().(error)
		}
		return out[0], nil
	default:
		return reflect.Value{}, fmt.Errorf("ioc: constructor %s must return (T) or (T, error)", c.fn.Type())
	}
}

// TypeIntrospector is the abstract type-introspection provider of spec §1
// and §9: given an implementation type, it enumerates the constructors
// usable to build it. Go cannot discover these reflectively from a bare
// reflect.Type, so the implementer supplies them explicitly at
// registration time (see WithConstructors); reflectIntrospector's job is
// limited to validating and reflecting on the functions it is given.
type TypeIntrospector interface {
	Constructors(implType reflect.Type, opts constructorOptions) ([]Constructor, error)
}

// constructorOptions carries the constructor functions supplied at
// registration time for an ImplementationType(T) Descriptor.
type constructorOptions struct {
	ctors []any
}

// Option configures a Register* call for an implementation-type
// Descriptor.
type Option func(*constructorOptions)

// WithConstructors supplies one or more constructor functions for an
// implementation type, each shaped func(deps...) I or func(deps...) (I, error).
// FactoryBuilder selects the one with the most parameters, breaking ties
// by registration order.
func WithConstructors(ctors ...any) Option {
	return func(o *constructorOptions) {
		o.ctors = append(o.ctors, ctors...)
	}
}

func buildConstructorOptions(opts []Option) constructorOptions {
	var o constructorOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// reflectIntrospector is the default TypeIntrospector: it reflects on the
// constructor functions supplied via WithConstructors.
type reflectIntrospector struct{}

func (reflectIntrospector) Constructors(implType reflect.Type, opts constructorOptions) ([]Constructor, error) {
	if len(opts.ctors) == 0 {
		return nil, &ErrNoConstructor{Type: implType}
	}

	cands := make([]Constructor, 0, len(opts.ctors))
	for _, raw := range opts.ctors {
		fn := reflect.ValueOf(raw)
		ft := fn.Type()
		if ft.Kind() != reflect.Func {
			return nil, fmt.Errorf("ioc: constructor for %s must be a function, got %T", implType, raw)
		}
		if ft.NumOut() != 1 && ft.NumOut() != 2 {
			return nil, fmt.Errorf("ioc: constructor for %s must return (T) or (T, error)", implType)
		}
		if !ft.Out(0).AssignableTo(implType) {
			return nil, fmt.Errorf("ioc: constructor for %s returns %s, not assignable to %s", implType, ft.Out(0), implType)
		}
		if ft.NumOut() == 2 {
			errType := reflect.TypeOf((*error)(nil)).Elem()
			if !ft.Out(1).Implements(errType) {
				return nil, fmt.Errorf("ioc: constructor for %s's second return must be error", implType)
			}
		}

		params := make([]reflect.Type, ft.NumIn())
		for i := range params {
			params[i] = ft.In(i)
		}

		cands = append(cands, Constructor{ParamTypes: params, fn: fn})
	}

	return cands, nil
}
