package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
	usecaseport "github.com/amirhossein-jamali/people-registry/internal/domain/port/usecase"
)

// MockPersonUseCase is a mock implementation of the usecase.PersonUseCase interface
type MockPersonUseCase struct {
	mock.Mock
}

// CreatePerson mocks the CreatePerson method
func (m *MockPersonUseCase) CreatePerson(ctx context.Context, input usecaseport.PersonInput) (*entity.Person, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

// GetPerson mocks the GetPerson method
func (m *MockPersonUseCase) GetPerson(ctx context.Context, id uint64) (*entity.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

// ListPersons mocks the ListPersons method
func (m *MockPersonUseCase) ListPersons(ctx context.Context) ([]*entity.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Person), args.Error(1)
}

// UpdatePerson mocks the UpdatePerson method
func (m *MockPersonUseCase) UpdatePerson(ctx context.Context, id uint64, input usecaseport.PersonInput) (*entity.Person, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Person), args.Error(1)
}

// DeletePerson mocks the DeletePerson method
func (m *MockPersonUseCase) DeletePerson(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
