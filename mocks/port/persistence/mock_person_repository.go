package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
)

// MockPersonRepository is a mock implementation of the persistence.PersonRepository interface
type MockPersonRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockPersonRepository) Create(ctx context.Context, person *entity.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// GetByID mocks the GetByID method
func (m *MockPersonRepository) GetByID(ctx context.Context, id uint64) (*entity.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

// List mocks the List method
func (m *MockPersonRepository) List(ctx context.Context) ([]*entity.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Person), args.Error(1)
}

// Update mocks the Update method
func (m *MockPersonRepository) Update(ctx context.Context, person *entity.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// UpdatePoints mocks the UpdatePoints method
func (m *MockPersonRepository) UpdatePoints(ctx context.Context, id uint64, points int64) error {
	args := m.Called(ctx, id, points)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockPersonRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
