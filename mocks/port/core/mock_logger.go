package core

import (
	"github.com/stretchr/testify/mock"

	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
)

// MockLogger is a mock implementation of the core.Logger interface
type MockLogger struct {
	mock.Mock
}

// SetLevel mocks the SetLevel method
func (m *MockLogger) SetLevel(level coreport.LogLevel) {
	m.Called(level)
}

// GetLevel mocks the GetLevel method
func (m *MockLogger) GetLevel() coreport.LogLevel {
	args := m.Called()
	return args.Get(0).(coreport.LogLevel)
}

// Debug mocks the Debug method
func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Info mocks the Info method
func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Warn mocks the Warn method
func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Error mocks the Error method
func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Flush mocks the Flush method
func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
