package ioc

import "reflect"

// Resolver is the dispatch surface of spec §4.5. Container, Provider and
// Scope all eventually construct one bound to (Container, *Provider,
// *Scope) and hand it to factories, so a factory resolving its own
// dependencies always resolves through the same instance — and therefore
// the same ResolutionContext — as the call that triggered its build.
type Resolver interface {
	Resolve(t reflect.Type) (any, error)
}

// resolver is the only Resolver implementation. scope is nil when there is
// no active Scope (a bare Provider-level resolve); per spec §4.7 a
// Singleton resolved through a non-nil scope still lands in the
// Descriptor-level singleton slot below, not in the Scope, so no
// special-casing of scope is needed in resolveWithLifetime.
type resolver struct {
	container *Container
	provider  *Provider
	scope     *Scope
	rc        *resolutionContext
}

func newResolver(container *Container, provider *Provider, scope *Scope) *resolver {
	return &resolver{
		container: container,
		provider:  provider,
		scope:     scope,
		rc:        newResolutionContext(),
	}
}

func (r *resolver) Resolve(t reflect.Type) (any, error) {
	if elem, ok := isEnumerableType(t); ok {
		return r.resolveAll(elem)
	}

	d, err := r.container.getDescriptor(t)
	if err != nil {
		return nil, err
	}
	return r.resolveDescriptor(d)
}

// resolveAll implements the "enumerable of E" wire convention: every
// Descriptor registered for elem is resolved, in registration order, and
// returned as a []any for ResolveAll to type-assert element by element.
func (r *resolver) resolveAll(elem reflect.Type) (any, error) {
	descriptors := r.container.getDescriptors(elem)
	out := make([]any, 0, len(descriptors))
	for _, d := range descriptors {
		v, err := r.resolveDescriptor(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// resolveDescriptor dispatches on descriptor kind, then lifetime, per
// spec §4.5's policy table.
func (r *resolver) resolveDescriptor(d *Descriptor) (any, error) {
	switch d.kind {
	case kindPreBuiltInstance:
		return d.singleton, nil

	case kindUserFactory:
		return r.resolveWithLifetime(d, d.userFactory)

	case kindImplementation:
		accepted, path := r.rc.tryEnter(d.serviceType)
		if !accepted {
			return nil, &ErrCircularDependency{Path: path}
		}
		defer r.rc.exit(d.serviceType)

		factory, err := r.ensureFactory(d)
		if err != nil {
			return nil, err
		}
		return r.resolveWithLifetime(d, factory)

	default:
		return nil, &ErrMissingImplementation{ServiceType: d.serviceType}
	}
}

// ensureFactory compiles and caches d.cachedFactory on first use, via
// FactoryBuilder. A failed build (e.g. a cycle FactoryBuilder's own
// DependencyGraph check catches before ResolutionContext would) is not
// memoized: the Descriptor lock is simply released, so a later resolve
// with different graph state can retry.
func (r *resolver) ensureFactory(d *Descriptor) (Factory, error) {
	d.factoryMu.Lock()
	defer d.factoryMu.Unlock()

	if d.factoryBuilt {
		return d.cachedFactory, nil
	}

	factory, err := buildFactory(d, r.container.introspector, r.container.graph)
	if err != nil {
		return nil, err
	}
	d.cachedFactory = factory
	d.factoryBuilt = true
	return factory, nil
}

func (r *resolver) resolveWithLifetime(d *Descriptor, factory Factory) (any, error) {
	switch d.lifetime {
	case Singleton:
		return r.resolveSingleton(d, factory)
	case Scoped:
		return r.resolveScoped(d, factory)
	case PerThread:
		return r.resolvePerThread(d, factory)
	default:
		v, err := factory(r)
		if err != nil {
			return nil, &ErrFactoryFailure{ServiceType: d.serviceType, Err: err}
		}
		return v, nil
	}
}

// resolveSingleton serialises construction via the Descriptor's own lock
// rather than racing and discarding losers — both are permitted by spec
// §7, and serialising means there is never a losing instance to dispose.
func (r *resolver) resolveSingleton(d *Descriptor, factory Factory) (any, error) {
	d.singletonMu.Lock()
	defer d.singletonMu.Unlock()

	if d.singletonBuilt {
		return d.singleton, nil
	}

	v, err := factory(r)
	if err != nil {
		return nil, &ErrFactoryFailure{ServiceType: d.serviceType, Err: err}
	}
	d.singleton = v
	d.singletonBuilt = true
	if r.provider != nil {
		r.provider.trackDisposable(v)
	}
	return v, nil
}

// resolveScoped delegates to the active Scope's cache when one exists.
// With no active Scope, ContainerOptions.StrictScoping decides between
// ErrNoActiveScope and the transient fallback spec §9 leaves as the
// permissive default.
func (r *resolver) resolveScoped(d *Descriptor, factory Factory) (any, error) {
	if r.scope == nil {
		if r.container.options.StrictScoping {
			return nil, &ErrNoActiveScope{Type: d.serviceType}
		}
		v, err := factory(r)
		if err != nil {
			return nil, &ErrFactoryFailure{ServiceType: d.serviceType, Err: err}
		}
		return v, nil
	}

	return r.scope.getOrCreate(d, func() (any, error) {
		v, err := factory(r)
		if err != nil {
			return nil, &ErrFactoryFailure{ServiceType: d.serviceType, Err: err}
		}
		return v, nil
	})
}

// resolvePerThread keys the Descriptor's cache on the calling OS thread's
// identity (currentThreadID in threadid_linux.go / threadid_other.go), per
// spec §5. A newly created disposable instance is handed to the Provider,
// which disposes it alongside the singletons.
func (r *resolver) resolvePerThread(d *Descriptor, factory Factory) (any, error) {
	tid := currentThreadID()
	slotAny, _ := d.threadSlots.LoadOrStore(tid, &threadSlot{})
	slot := slotAny.(*threadSlot)

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if slot.built {
		return slot.value, nil
	}
	v, err := factory(r)
	if err != nil {
		return nil, &ErrFactoryFailure{ServiceType: d.serviceType, Err: err}
	}
	slot.value = v
	slot.built = true
	if r.provider != nil {
		r.provider.trackDisposable(v)
	}
	return v, nil
}
