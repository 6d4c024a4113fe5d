package ioc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrFactoryFailureUnwraps(t *testing.T) {
	inner := errors.New("db connection refused")
	err := &ErrFactoryFailure{ServiceType: typeOf[int](), Err: inner}

	assert.True(t, errors.Is(err, inner))
	assert.Contains(t, err.Error(), "db connection refused")
}

func TestErrDisposalAggregateUnwraps(t *testing.T) {
	e1 := errors.New("close failed")
	e2 := errors.New("flush failed")
	agg := &ErrDisposalAggregate{Errs: []error{e1, e2}}

	assert.True(t, errors.Is(agg, e1))
	assert.True(t, errors.Is(agg, e2))
	assert.Contains(t, agg.Error(), "2 disposal error(s)")
}

func TestErrCircularDependencyRendersPath(t *testing.T) {
	err := &ErrCircularDependency{Path: []reflect.Type{typeOf[int](), typeOf[string](), typeOf[int]()}}
	require.Contains(t, err.Error(), "int -> string -> int")
}
