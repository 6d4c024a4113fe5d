package ioc

import (
	"reflect"
)

// buildFactory compiles a Descriptor whose kind is ImplementationType into
// an executable Factory, per spec §4.4:
//
//  1. ask the TypeIntrospector for the implementation type's constructors
//  2. select the one with the most parameters, ties broken by the first
//     one the introspector yielded
//  3. compute its parameter types
//  4. record the serviceType -> paramTypes edge in the DependencyGraph
//  5. fail with CircularDependency if that edge just closed a cycle
//  6. return a closure that resolves each parameter in order, then calls
//     the constructor
//
// buildFactory runs when the factory is first needed, on the first resolve
// of the Descriptor (resolver.ensureFactory), not at registration. It
// fails before any constructor is called: a factory that would create a
// cycle never gets a chance to run.
func buildFactory(d *Descriptor, introspector TypeIntrospector, graph *DependencyGraph) (Factory, error) {
	if d.implementationType == nil {
		return nil, &ErrMissingImplementation{ServiceType: d.serviceType}
	}

	candidates, err := introspector.Constructors(d.implementationType, d.ctorOpts)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, &ErrNoConstructor{Type: d.implementationType}
	}

	chosen := selectConstructor(candidates)

	graph.addDependency(d.serviceType, chosen.ParamTypes)
	if found, path := graph.hasCycle(d.serviceType); found {
		return nil, &ErrCircularDependency{Path: path}
	}

	paramTypes := chosen.ParamTypes
	ctor := chosen

	return func(r Resolver) (any, error) {
		args := make([]reflect.Value, len(paramTypes))
		for i, pt := range paramTypes {
			dep, err := r.Resolve(pt)
			if err != nil {
				return nil, err
			}
			if dep == nil {
				args[i] = reflect.Zero(pt)
			} else {
				args[i] = reflect.ValueOf(dep)
			}
		}

		out, err := ctor.invoke(args)
		if err != nil {
			return nil, err
		}
		return out.Interface(), nil
	}, nil
}

// selectConstructor implements spec §4.4 step 2: most parameters wins,
// the first one introspection yielded wins ties.
func selectConstructor(candidates []Constructor) Constructor {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.ParamTypes) > len(best.ParamTypes) {
			best = c
		}
	}
	return best
}
