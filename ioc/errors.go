package ioc

import (
	"fmt"
	"reflect"
	"strings"
)

// ErrNotRegistered is returned when a resolve targets a service type that
// has no Descriptor in the Container.
type ErrNotRegistered struct {
	Type reflect.Type
}

func (e *ErrNotRegistered) Error() string {
	return fmt.Sprintf("ioc: %s is not registered", e.Type)
}

// ErrCircularDependency is returned at factory-build time (DependencyGraph)
// or at resolve time (ResolutionContext) when a service transitively
// depends on itself.
type ErrCircularDependency struct {
	Path []reflect.Type
}

func (e *ErrCircularDependency) Error() string {
	names := make([]string, len(e.Path))
	for i, t := range e.Path {
		names[i] = t.String()
	}
	return fmt.Sprintf("ioc: circular dependency: %s", strings.Join(names, " -> "))
}

// ErrNoConstructor is returned when FactoryBuilder cannot discover any
// usable constructor for an implementation type.
type ErrNoConstructor struct {
	Type reflect.Type
}

func (e *ErrNoConstructor) Error() string {
	return fmt.Sprintf("ioc: %s has no usable constructor", e.Type)
}

// ErrMissingImplementation is returned when a Descriptor's kind is
// ImplementationType but its implementation type is nil.
type ErrMissingImplementation struct {
	ServiceType reflect.Type
}

func (e *ErrMissingImplementation) Error() string {
	return fmt.Sprintf("ioc: %s has no implementation type", e.ServiceType)
}

// ErrAlreadyDisposed is returned when resolve is attempted on a disposed
// Scope or Provider, or registration on a disposed Container.
type ErrAlreadyDisposed struct {
	Target string // "scope", "provider" or "container"
}

func (e *ErrAlreadyDisposed) Error() string {
	return fmt.Sprintf("ioc: %s is already disposed", e.Target)
}

// ErrNoActiveScope is returned instead of the transient fallback when
// ContainerOptions.StrictScoping is set and a Scoped service is resolved
// without an active Scope. Bootstrap's *Scope factory also returns it,
// whatever the options, when it runs with no active Scope.
type ErrNoActiveScope struct {
	Type reflect.Type
}

func (e *ErrNoActiveScope) Error() string {
	return fmt.Sprintf("ioc: %s is scoped but no scope is active", e.Type)
}

// ErrFactoryFailure wraps an error raised by a user factory or a
// constructor call. Nothing is cached when this error is returned.
type ErrFactoryFailure struct {
	ServiceType reflect.Type
	Err         error
}

func (e *ErrFactoryFailure) Error() string {
	return fmt.Sprintf("ioc: factory for %s failed: %v", e.ServiceType, e.Err)
}

func (e *ErrFactoryFailure) Unwrap() error { return e.Err }

// ErrDisposalAggregate collects every error raised while disposing a Scope
// or Provider. All disposables are still attempted even after a failure.
type ErrDisposalAggregate struct {
	Errs []error
}

func (e *ErrDisposalAggregate) Error() string {
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("ioc: %d disposal error(s): %s", len(e.Errs), strings.Join(parts, "; "))
}

func (e *ErrDisposalAggregate) Unwrap() []error { return e.Errs }

func errNotAssignable(v any, want reflect.Type) error {
	return fmt.Errorf("ioc: resolved value %T is not assignable to %s", v, want)
}

// ErrAlreadyRegistered is returned by a Container with StrictRegistration
// enabled when a second Descriptor with a different lifetime is
// registered for a service type already bound.
type ErrAlreadyRegistered struct {
	Type reflect.Type
}

func (e *ErrAlreadyRegistered) Error() string {
	return fmt.Sprintf("ioc: %s is already registered (strict registration)", e.Type)
}
