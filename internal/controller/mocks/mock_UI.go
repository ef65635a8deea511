// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/tracecov/internal/controller"
	m "github.com/mouse-blink/tracecov/internal/model"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// DisplaySummary provides a mock function with given fields: result, sets.
func (_m *MockUI) DisplaySummary(result *m.AnalysisResult, sets []m.AnnotationSet) error {
	ret := _m.Called(result, sets)

	return ret.Error(0)
}

// DisplayAnnotations provides a mock function with given fields: sets.
func (_m *MockUI) DisplayAnnotations(sets []m.AnnotationSet) error {
	ret := _m.Called(sets)

	return ret.Error(0)
}

// RunNavigator provides a mock function with given fields: result, frameAnnotations, nav, startFrame.
func (_m *MockUI) RunNavigator(result *m.AnalysisResult, frameAnnotations []m.Annotation, nav controller.Navigator, startFrame int) error {
	ret := _m.Called(result, frameAnnotations, nav, startFrame)

	return ret.Error(0)
}

// NewMockUI creates a new instance of MockUI. It also registers a cleanup
// function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mock := &MockUI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
