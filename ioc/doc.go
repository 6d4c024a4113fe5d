// Package ioc implements the resolver engine of a dependency-injection
// container: registrations, constructor-dependency planning, cycle
// detection, per-lifetime caching, scoped lifetime management, and the
// concurrency discipline needed to resolve many goroutines at once while
// keeping "exactly one" semantics for singletons.
package ioc
