package ioc

// Bootstrap builds an empty Container, applies opts, and performs the
// self-registrations spec §4.6/§6 requires: the Container and Provider
// are each registered as singletons at their own abstract type, and a
// Scoped descriptor for *Scope resolves to whichever Scope is active on
// the current resolution chain. A constructor can therefore take a
// *Container, *Provider or *Scope as a dependency exactly like any other
// registered service.
func Bootstrap(opts ...ContainerOption) (*Container, *Provider) {
	c := NewContainer(opts...)
	p := c.Provider()

	mustRegister(RegisterSingletonInstance(c, c))
	mustRegister(RegisterSingletonInstance(c, p))
	mustRegister(RegisterScopedFactory(c, func(r Resolver) (*Scope, error) {
		rr, ok := r.(*resolver)
		if !ok || rr.scope == nil {
			return nil, &ErrNoActiveScope{Type: typeOf[*Scope]()}
		}
		return rr.scope, nil
	}))

	return c, p
}

// mustRegister panics on a registration failure during Bootstrap, which
// can only happen if the Container was somehow already disposed before
// Bootstrap finished running — a programming error, not a runtime
// condition callers need to recover from.
func mustRegister(c *Container, err error) {
	if err != nil {
		panic(err)
	}
}
