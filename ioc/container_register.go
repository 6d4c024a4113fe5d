package ioc

import "reflect"

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterSingleton registers implementation type I against service type
// S as a Singleton. I's constructor functions must be supplied via
// WithConstructors.
func RegisterSingleton[S, I any](c *Container, opts ...Option) (*Container, error) {
	return c.register(newImplementationDescriptor(typeOf[S](), typeOf[I](), Singleton, buildConstructorOptions(opts)))
}

// RegisterSingletonInstance registers a pre-built instance as a Singleton,
// per spec §3: its singleton slot is already populated at registration.
func RegisterSingletonInstance[S any](c *Container, instance S) (*Container, error) {
	return c.register(newInstanceDescriptor(typeOf[S](), instance))
}

// RegisterSingletonFactory registers a user factory as a Singleton. A
// UserFactory Descriptor never consults the TypeIntrospector.
func RegisterSingletonFactory[S any](c *Container, factory func(r Resolver) (S, error)) (*Container, error) {
	return c.register(newFactoryDescriptor(typeOf[S](), wrapTypedFactory(factory), Singleton))
}

// RegisterScoped registers implementation type I against service type S
// as Scoped.
func RegisterScoped[S, I any](c *Container, opts ...Option) (*Container, error) {
	return c.register(newImplementationDescriptor(typeOf[S](), typeOf[I](), Scoped, buildConstructorOptions(opts)))
}

// RegisterScopedFactory registers a user factory as Scoped.
func RegisterScopedFactory[S any](c *Container, factory func(r Resolver) (S, error)) (*Container, error) {
	return c.register(newFactoryDescriptor(typeOf[S](), wrapTypedFactory(factory), Scoped))
}

// RegisterTransient registers implementation type I against service type
// S as Transient.
func RegisterTransient[S, I any](c *Container, opts ...Option) (*Container, error) {
	return c.register(newImplementationDescriptor(typeOf[S](), typeOf[I](), Transient, buildConstructorOptions(opts)))
}

// RegisterTransientFactory registers a user factory as Transient.
func RegisterTransientFactory[S any](c *Container, factory func(r Resolver) (S, error)) (*Container, error) {
	return c.register(newFactoryDescriptor(typeOf[S](), wrapTypedFactory(factory), Transient))
}

// RegisterPerThread registers implementation type I against service type
// S as PerThread.
func RegisterPerThread[S, I any](c *Container, opts ...Option) (*Container, error) {
	return c.register(newImplementationDescriptor(typeOf[S](), typeOf[I](), PerThread, buildConstructorOptions(opts)))
}

// RegisterPerThreadFactory registers a user factory as PerThread.
func RegisterPerThreadFactory[S any](c *Container, factory func(r Resolver) (S, error)) (*Container, error) {
	return c.register(newFactoryDescriptor(typeOf[S](), wrapTypedFactory(factory), PerThread))
}

func wrapTypedFactory[S any](factory func(r Resolver) (S, error)) Factory {
	return func(r Resolver) (any, error) {
		return factory(r)
	}
}

// Resolve is the typed convenience wrapper over Resolver.Resolve used by
// every call site in this module — Provider, Scope, and consumer code
// alike.
func Resolve[T any](r Resolver) (T, error) {
	var zero T
	v, err := r.Resolve(typeOf[T]())
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &ErrFactoryFailure{ServiceType: typeOf[T](), Err: errNotAssignable(v, typeOf[T]())}
	}
	return typed, nil
}
