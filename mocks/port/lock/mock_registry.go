package lock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRegistry is a mock implementation of the lock.Registry interface
type MockRegistry struct {
	mock.Mock
}

// Lock mocks the Lock method
func (m *MockRegistry) Lock(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// IsLocked mocks the IsLocked method
func (m *MockRegistry) IsLocked(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// LockedIDs mocks the LockedIDs method
func (m *MockRegistry) LockedIDs(ctx context.Context) ([]uint64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}
