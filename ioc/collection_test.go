package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plugin interface{ Name() string }

type pluginA struct{}

func (pluginA) Name() string { return "a" }

type pluginB struct{}

func (pluginB) Name() string { return "b" }

func TestResolveAllReturnsEveryRegistrationInOrder(t *testing.T) {
	c := NewContainer()
	_, err := RegisterSingletonInstance[plugin](c, pluginA{})
	require.NoError(t, err)
	_, err = RegisterSingletonInstance[plugin](c, pluginB{})
	require.NoError(t, err)

	all, err := ResolveAll[plugin](c.Provider())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name())
	assert.Equal(t, "b", all[1].Name())
}

func TestResolveAllEmptyWhenNothingRegistered(t *testing.T) {
	c := NewContainer()
	all, err := ResolveAll[plugin](c.Provider())
	require.NoError(t, err)
	assert.Empty(t, all)
}
