package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter interface{ Count() int }

type counterImpl struct{ n int }

var counterSeq int

func newCounter() *counterImpl {
	counterSeq++
	return &counterImpl{n: counterSeq}
}

func (c *counterImpl) Count() int { return c.n }

func TestSingletonIsSharedAcrossScopes(t *testing.T) {
	c := NewContainer()
	_, err := RegisterSingleton[counter, *counterImpl](c, WithConstructors(newCounter))
	require.NoError(t, err)
	p := c.Provider()

	s1 := p.CreateScope()
	s2 := p.CreateScope()

	a, err := Resolve[counter](s1)
	require.NoError(t, err)
	b, err := Resolve[counter](s2)
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestScopedIsPerScope(t *testing.T) {
	c := NewContainer()
	_, err := RegisterScoped[counter, *counterImpl](c, WithConstructors(newCounter))
	require.NoError(t, err)
	p := c.Provider()

	s1 := p.CreateScope()
	s2 := p.CreateScope()

	a1, err := Resolve[counter](s1)
	require.NoError(t, err)
	a2, err := Resolve[counter](s1)
	require.NoError(t, err)
	b, err := Resolve[counter](s2)
	require.NoError(t, err)

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)
}

func TestScopedWithoutActiveScopeFallsBackToTransient(t *testing.T) {
	c := NewContainer()
	_, err := RegisterScoped[counter, *counterImpl](c, WithConstructors(newCounter))
	require.NoError(t, err)
	p := c.Provider()

	a, err := Resolve[counter](p)
	require.NoError(t, err)
	b, err := Resolve[counter](p)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
}

func TestScopedWithoutActiveScopeFailsUnderStrictScoping(t *testing.T) {
	c := NewContainer(WithOptions(ContainerOptions{StrictScoping: true}))
	_, err := RegisterScoped[counter, *counterImpl](c, WithConstructors(newCounter))
	require.NoError(t, err)

	_, err = Resolve[counter](c.Provider())
	var want *ErrNoActiveScope
	assert.ErrorAs(t, err, &want)
}

func TestTransientIsAlwaysFresh(t *testing.T) {
	c := NewContainer()
	_, err := RegisterTransient[counter, *counterImpl](c, WithConstructors(newCounter))
	require.NoError(t, err)
	p := c.Provider()

	a, err := Resolve[counter](p)
	require.NoError(t, err)
	b, err := Resolve[counter](p)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
}

type mutualA interface{ A() }
type mutualB interface{ B() }

type mutualAImpl struct{ b mutualB }

func (*mutualAImpl) A() {}

type mutualBImpl struct{ a mutualA }

func (*mutualBImpl) B() {}

func newMutualA(b mutualB) *mutualAImpl { return &mutualAImpl{b: b} }
func newMutualB(a mutualA) *mutualBImpl { return &mutualBImpl{a: a} }

func TestCircularConstructorDependencyFails(t *testing.T) {
	c := NewContainer()
	_, err := RegisterTransient[mutualA, *mutualAImpl](c, WithConstructors(newMutualA))
	require.NoError(t, err)
	_, err = RegisterTransient[mutualB, *mutualBImpl](c, WithConstructors(newMutualB))
	require.NoError(t, err)

	_, err = Resolve[mutualA](c.Provider())
	var want *ErrCircularDependency
	assert.ErrorAs(t, err, &want)
}
