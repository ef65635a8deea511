// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/tracecov/internal/domain"
	m "github.com/mouse-blink/tracecov/internal/model"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// Load provides a mock function with given fields: report.
func (_m *MockWorkflow) Load(report m.Path) (*m.AnalysisResult, error) {
	ret := _m.Called(report)

	var r0 *m.AnalysisResult
	if rf, ok := ret.Get(0).(*m.AnalysisResult); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// Annotations provides a mock function with given fields: ctx, result, threads, scope.
func (_m *MockWorkflow) Annotations(ctx context.Context, result *m.AnalysisResult, threads int, scope m.Scope) ([]m.AnnotationSet, error) {
	ret := _m.Called(ctx, result, threads, scope)

	var r0 []m.AnnotationSet
	if rf, ok := ret.Get(0).([]m.AnnotationSet); ok {
		r0 = rf
	}

	return r0, ret.Error(1)
}

// Summary provides a mock function with given fields: args.
func (_m *MockWorkflow) Summary(args domain.SummaryArgs) error {
	return _m.Called(args).Error(0)
}

// Annotate provides a mock function with given fields: args.
func (_m *MockWorkflow) Annotate(args domain.AnnotateArgs) error {
	return _m.Called(args).Error(0)
}

// Step provides a mock function with given fields: args.
func (_m *MockWorkflow) Step(args domain.StepArgs) error {
	return _m.Called(args).Error(0)
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a cleanup
// function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
