package ioc

import (
	"context"
	"reflect"
	"sync"
)

// ContainerOptions configures the two behaviors spec §9 flags as open
// questions the source left divergent. Both default to the behavior
// spec.md itself chose.
type ContainerOptions struct {
	// StrictScoping turns "resolve a Scoped service with no active Scope"
	// from a transient fallback (the default) into ErrNoActiveScope.
	StrictScoping bool `yaml:"strictScoping"`
	// StrictRegistration turns a second registration of the same service
	// type at a different Lifetime into ErrAlreadyRegistered instead of
	// silently letting "last wins" apply.
	StrictRegistration bool `yaml:"strictRegistration"`
}

// Container is the registry of spec §4.2: serviceType -> ordered list of
// Descriptors, insertion order preserved, "last wins" for single resolve.
// It owns the DependencyGraph its FactoryBuilder calls populate and the
// TypeIntrospector implementation-type registrations consult.
//
// Per the design note in spec §9, the DependencyGraph here is scoped to
// one Container rather than shared process-wide, which avoids
// cross-container false positives when a test suite builds many small
// Containers concurrently.
type Container struct {
	mu          sync.RWMutex
	descriptors map[reflect.Type][]*Descriptor
	disposed    bool

	introspector TypeIntrospector
	graph        *DependencyGraph
	options      ContainerOptions
	logger       Logger

	providerOnce sync.Once
	provider     *Provider
}

// ContainerOption configures a Container at construction time.
type ContainerOption func(*Container)

// WithOptions sets the ContainerOptions used for strict-mode behavior.
func WithOptions(o ContainerOptions) ContainerOption {
	return func(c *Container) { c.options = o }
}

// WithLogger overrides the default no-op Logger.
func WithLogger(l Logger) ContainerOption {
	return func(c *Container) { c.logger = l }
}

// WithIntrospector overrides the default reflection-based TypeIntrospector.
func WithIntrospector(ti TypeIntrospector) ContainerOption {
	return func(c *Container) { c.introspector = ti }
}

// NewContainer creates an empty Container.
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{
		descriptors:  make(map[reflect.Type][]*Descriptor),
		introspector: reflectIntrospector{},
		graph:        newDependencyGraph(),
		logger:       nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// register appends d to the list for d.serviceType and returns the
// Container for fluent chaining, per spec §4.2.
func (c *Container) register(d *Descriptor) (*Container, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil, &ErrAlreadyDisposed{Target: "container"}
	}

	if c.options.StrictRegistration {
		if existing := c.descriptors[d.serviceType]; len(existing) > 0 {
			if existing[len(existing)-1].lifetime != d.lifetime {
				return nil, &ErrAlreadyRegistered{Type: d.serviceType}
			}
		}
	}

	c.descriptors[d.serviceType] = append(c.descriptors[d.serviceType], d)
	c.logger.Event("descriptor.registered", map[string]any{
		"serviceType": d.serviceType.String(),
		"lifetime":    d.lifetime.String(),
	})
	return c, nil
}

// getDescriptor returns the last Descriptor registered for serviceType.
func (c *Container) getDescriptor(serviceType reflect.Type) (*Descriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.descriptors[serviceType]
	if len(list) == 0 {
		return nil, &ErrNotRegistered{Type: serviceType}
	}
	return list[len(list)-1], nil
}

// getDescriptors returns every Descriptor registered for serviceType, in
// registration order. It never fails; an empty slice means "none
// registered" and is distinguished from a nil slice only by callers that
// care (the collection-request path in resolver.go does not).
func (c *Container) getDescriptors(serviceType reflect.Type) []*Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.descriptors[serviceType]
	out := make([]*Descriptor, len(list))
	copy(out, list)
	return out
}

// Provider returns the singleton Provider bound to this Container,
// creating it lazily on first call (spec §4.2).
func (c *Container) Provider() *Provider {
	c.providerOnce.Do(func() {
		c.provider = newProvider(c)
	})
	return c.provider
}

// Dispose disposes the Container's bound Provider (and therefore every
// singleton it created) and marks the Container disposed: further
// registration fails with ErrAlreadyDisposed.
func (c *Container) Dispose(ctx context.Context) error {
	err := c.Provider().Dispose(ctx)

	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()

	return err
}
