package ioc

import (
	"reflect"
	"sync"
)

// DependencyGraph is the directed graph of service type to dependency
// types for one Container. Scoping it per-Container rather than sharing
// one process-wide graph avoids false-positive cycles between unrelated
// Containers built in the same process (a common case in test suites that
// construct many small Containers). A single FactoryBuilder run only ever
// adds edges, never removes them, and hasCycle is safe to call from many
// goroutines at once over a snapshot of the adjacency map.
//
// Adapted from the teacher's ModuleGraph (libs/core/module_graph.go),
// which ran the same visited/recursion-stack DFS over module names to
// find import cycles; here the nodes are reflect.Type and the graph is
// queried once per factory build rather than once at module-load time.
type DependencyGraph struct {
	mu    sync.RWMutex
	edges map[reflect.Type][]reflect.Type
}

func newDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[reflect.Type][]reflect.Type),
	}
}

// addDependency unions deps into service's adjacency list. Existing edges
// are preserved; duplicates are not re-added.
func (g *DependencyGraph) addDependency(service reflect.Type, deps []reflect.Type) {
	g.mu.Lock()
	defer g.mu.Unlock()

	existing := g.edges[service]
	seen := make(map[reflect.Type]bool, len(existing))
	for _, t := range existing {
		seen[t] = true
	}
	for _, d := range deps {
		if !seen[d] {
			existing = append(existing, d)
			seen[d] = true
		}
	}
	g.edges[service] = existing
}

// snapshot copies the adjacency map under RLock so hasCycle can run
// lock-free over a consistent view, per spec §4.3/§5.
func (g *DependencyGraph) snapshot() map[reflect.Type][]reflect.Type {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cp := make(map[reflect.Type][]reflect.Type, len(g.edges))
	for k, v := range g.edges {
		dup := make([]reflect.Type, len(v))
		copy(dup, v)
		cp[k] = dup
	}
	return cp
}

// hasCycle runs a DFS from startType over a snapshot of the adjacency
// map, visiting neighbours in recorded (insertion) order. On a back-edge
// it returns the exact path from startType through the cycle, ending with
// the repeated node, as required by spec §4.3 and §4.8.
func (g *DependencyGraph) hasCycle(startType reflect.Type) (bool, []reflect.Type) {
	edges := g.snapshot()

	visited := make(map[reflect.Type]bool)
	onStack := make(map[reflect.Type]bool)
	var stack []reflect.Type

	var visit func(t reflect.Type) (bool, []reflect.Type)
	visit = func(t reflect.Type) (bool, []reflect.Type) {
		onStack[t] = true
		stack = append(stack, t)

		for _, dep := range edges[t] {
			if onStack[dep] {
				// Back-edge: report the full chain from startType through
				// the cycle, ending with the repeated node (spec §4.3/§4.8).
				path := append([]reflect.Type{}, stack...)
				path = append(path, dep)
				return true, path
			}
			if !visited[dep] {
				if found, path := visit(dep); found {
					return true, path
				}
			}
		}

		onStack[t] = false
		stack = stack[:len(stack)-1]
		visited[t] = true
		return false, nil
	}

	return visit(startType)
}
