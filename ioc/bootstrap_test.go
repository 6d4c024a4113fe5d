package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapSelfRegistersContainerAndProvider(t *testing.T) {
	c, p := Bootstrap()

	gotContainer, err := Resolve[*Container](p)
	require.NoError(t, err)
	assert.Same(t, c, gotContainer)

	gotProvider, err := Resolve[*Provider](p)
	require.NoError(t, err)
	assert.Same(t, p, gotProvider)
}

func TestBootstrapScopeFactoryResolvesActiveScope(t *testing.T) {
	_, p := Bootstrap()
	s := p.CreateScope()

	got, err := Resolve[*Scope](s)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestBootstrapScopeFactoryFailsWithoutActiveScope(t *testing.T) {
	_, p := Bootstrap()

	_, err := Resolve[*Scope](p)
	var want *ErrNoActiveScope
	assert.ErrorAs(t, err, &want)
}
