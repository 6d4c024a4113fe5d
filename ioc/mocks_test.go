package ioc

import (
	"reflect"

	"go.uber.org/mock/gomock"
)

// MockTypeIntrospector is a hand-written stand-in for what `mockgen
// -source=introspector.go` would produce for the TypeIntrospector
// interface. Kept by hand rather than generated so the test package has
// no go:generate dependency on a local mockgen binary.
type MockTypeIntrospector struct {
	ctrl     *gomock.Controller
	recorder *MockTypeIntrospectorMockRecorder
}

type MockTypeIntrospectorMockRecorder struct {
	mock *MockTypeIntrospector
}

func NewMockTypeIntrospector(ctrl *gomock.Controller) *MockTypeIntrospector {
	m := &MockTypeIntrospector{ctrl: ctrl}
	m.recorder = &MockTypeIntrospectorMockRecorder{mock: m}
	return m
}

func (m *MockTypeIntrospector) EXPECT() *MockTypeIntrospectorMockRecorder {
	return m.recorder
}

func (m *MockTypeIntrospector) Constructors(implType reflect.Type, opts constructorOptions) ([]Constructor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Constructors", implType, opts)
	ret0, _ := ret[0].([]Constructor)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockTypeIntrospectorMockRecorder) Constructors(implType, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Constructors", reflect.TypeOf((*MockTypeIntrospector)(nil).Constructors), implType, opts)
}
