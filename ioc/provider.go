package ioc

import (
	"context"
	"reflect"
	"sync"
)

// Provider is spec §4.6: it holds the Container and resolves without
// requiring the caller to manage a Scope. A Scoped service resolved
// through the Provider directly (no Scope created yet) has no active
// Scope to cache into, so it falls through to ContainerOptions'
// StrictScoping/transient-fallback policy exactly as if resolved with a
// nil Scope — see resolver.resolveScoped.
type Provider struct {
	container *Container

	mu         sync.Mutex
	singletons []any // creation order, for reverse-order disposal
	disposed   bool
}

func newProvider(c *Container) *Provider {
	return &Provider{container: c}
}

// Resolve behaves as a Resolver over (Container, no active Scope).
func (p *Provider) Resolve(t reflect.Type) (any, error) {
	p.mu.Lock()
	disposed := p.disposed
	p.mu.Unlock()
	if disposed {
		return nil, &ErrAlreadyDisposed{Target: "provider"}
	}

	r := newResolver(p.container, p, nil)
	return r.Resolve(t)
}

// CreateScope returns a new Scope bound to this Provider.
func (p *Provider) CreateScope() *Scope {
	return newScope(p.container, p)
}

// trackDisposable records a newly created Singleton or PerThread instance for
// reverse-order disposal, the Provider-level analogue of what Scope does
// for its own Scoped instances.
func (p *Provider) trackDisposable(v any) {
	if !isDisposable(v) {
		return
	}
	p.mu.Lock()
	p.singletons = append(p.singletons, v)
	p.mu.Unlock()
}

// Dispose disposes every singleton and per-thread instance implementing
// Disposer, synchronously, in reverse creation order.
func (p *Provider) Dispose(ctx context.Context) error {
	return p.dispose(ctx, false)
}

// DisposeAsync prefers AsyncDisposer over Disposer where an instance
// implements both, falling back to synchronous disposal otherwise.
func (p *Provider) DisposeAsync(ctx context.Context) error {
	return p.dispose(ctx, true)
}

func (p *Provider) dispose(ctx context.Context, async bool) error {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return nil
	}
	p.disposed = true
	targets := make([]any, len(p.singletons))
	copy(targets, p.singletons)
	p.mu.Unlock()

	return disposeReverse(ctx, targets, async)
}
