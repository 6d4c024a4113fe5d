package ioc

import "reflect"

// resolutionContext is the per-call stack of spec §4.8: it tracks which
// types are currently under construction on this resolution chain so a
// factory that (directly or transitively) asks to resolve its own service
// type is caught as a cycle instead of recursing forever.
//
// It is created fresh by the top-level call into Resolver.Resolve and
// threaded explicitly through recursive calls — spec §9 calls this out
// directly as the fix for the source's ambient-variable design: no
// goroutine-local state, no shared mutable field on Resolver.
type resolutionContext struct {
	stack []reflect.Type
	onStack map[reflect.Type]bool
}

func newResolutionContext() *resolutionContext {
	return &resolutionContext{
		onStack: make(map[reflect.Type]bool),
	}
}

// tryEnter pushes t onto the stack unless it is already present, in which
// case it returns the rendered cycle path instead.
func (rc *resolutionContext) tryEnter(t reflect.Type) (accepted bool, renderedPath []reflect.Type) {
	if rc.onStack[t] {
		path := append([]reflect.Type{}, rc.stack...)
		path = append(path, t)
		return false, path
	}
	rc.stack = append(rc.stack, t)
	rc.onStack[t] = true
	return true, nil
}

// exit pops the most recently entered type. Callers must pair every
// successful tryEnter with exactly one exit.
func (rc *resolutionContext) exit(t reflect.Type) {
	if n := len(rc.stack); n > 0 && rc.stack[n-1] == t {
		rc.stack = rc.stack[:n-1]
	}
	delete(rc.onStack, t)
}
