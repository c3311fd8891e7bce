package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"
	"go.llib.dev/subspace/pkg/iterkit"
)

// MockIterator is a mock of the iterkit.Iterator interface.
type MockIterator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockIteratorMockRecorder[T]
}

// MockIteratorMockRecorder is the mock recorder for MockIterator.
type MockIteratorMockRecorder[T any] struct {
	mock *MockIterator[T]
}

var _ iterkit.Iterator[int] = (*MockIterator[int])(nil)

// NewMockIterator creates a new mock instance.
func NewMockIterator[T any](ctrl *gomock.Controller) *MockIterator[T] {
	mock := &MockIterator[T]{ctrl: ctrl}
	mock.recorder = &MockIteratorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIterator[T]) EXPECT() *MockIteratorMockRecorder[T] {
	return m.recorder
}

// Next mocks base method.
func (m *MockIterator[T]) Next() (T, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockIteratorMockRecorder[T]) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockIterator[T])(nil).Next))
}

// SizeHint mocks base method.
func (m *MockIterator[T]) SizeHint() iterkit.SizeHint {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SizeHint")
	ret0, _ := ret[0].(iterkit.SizeHint)
	return ret0
}

// SizeHint indicates an expected call of SizeHint.
func (mr *MockIteratorMockRecorder[T]) SizeHint() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SizeHint", reflect.TypeOf((*MockIterator[T])(nil).SizeHint))
}

// ExpectSequence makes the mock yield vs in order through Next, each exactly once.
// Pulling beyond vs fails the test, as does any call to SizeHint.
func ExpectSequence[T any](ctrl *gomock.Controller, vs ...T) *MockIterator[T] {
	m := NewMockIterator[T](ctrl)
	calls := make([]*gomock.Call, 0, len(vs))
	for _, v := range vs {
		calls = append(calls, m.EXPECT().Next().Return(v, true))
	}
	gomock.InOrder(calls...)
	return m
}
