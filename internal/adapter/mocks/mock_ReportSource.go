// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/tracecov/internal/model"
)

// MockReportSource is a mock type for the ReportSource type.
type MockReportSource struct {
	mock.Mock
}

// ReadReport provides a mock function with given fields: path.
func (_m *MockReportSource) ReadReport(path m.Path) (string, error) {
	ret := _m.Called(path)

	return ret.String(0), ret.Error(1)
}

// NewMockReportSource creates a new instance of MockReportSource. It also registers a cleanup
// function to assert the mocks expectations.
func NewMockReportSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportSource {
	mock := &MockReportSource{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
