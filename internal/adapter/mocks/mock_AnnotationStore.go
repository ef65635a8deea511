package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/tracecov/internal/model"
)

// MockAnnotationStore is a mock type for the AnnotationStore type.
type MockAnnotationStore struct {
	mock.Mock
}

// SaveAnnotations provides a mock function with given fields: path, sets.
func (_m *MockAnnotationStore) SaveAnnotations(path m.Path, sets []m.AnnotationSet) error {
	ret := _m.Called(path, sets)

	return ret.Error(0)
}

// WriteAnnotations provides a mock function with given fields: w, sets.
func (_m *MockAnnotationStore) WriteAnnotations(w io.Writer, sets []m.AnnotationSet) error {
	ret := _m.Called(w, sets)

	return ret.Error(0)
}

// NewMockAnnotationStore creates a new instance of MockAnnotationStore. It also registers a cleanup
// function to assert the mocks expectations.
func NewMockAnnotationStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAnnotationStore {
	mock := &MockAnnotationStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
