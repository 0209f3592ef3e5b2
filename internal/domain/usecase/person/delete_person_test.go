package person

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
)

func TestPersonUseCase_DeletePerson(t *testing.T) {
	t.Run("should delete an existing unlocked person", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		mockRegistry.On("IsLocked", ctx, uint64(4)).Return(false, nil)
		mockRepo.On("GetByID", ctx, uint64(4)).Return(existingPerson(4), nil)
		mockRepo.On("Delete", ctx, uint64(4)).Return(nil)

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		err := useCase.DeletePerson(ctx, 4)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("should reject delete while locked, before touching the store", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		mockRegistry.On("IsLocked", ctx, uint64(4)).Return(true, nil)

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		err := useCase.DeletePerson(ctx, 4)

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPersonLocked)

		// Lock state is checked before existence on deletes
		mockRepo.AssertNotCalled(t, "GetByID")
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("should report nothing to delete for a missing person", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		mockRegistry.On("IsLocked", ctx, uint64(123)).Return(false, nil)
		mockRepo.On("GetByID", ctx, uint64(123)).Return(nil, errs.ErrPersonNotFound)

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		err := useCase.DeletePerson(ctx, 123)

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPersonNotFound)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("should fail closed when the registry is unreachable", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		redisErr := errs.NewStoreError("redis", "isLocked", assert.AnError)
		mockRegistry.On("IsLocked", ctx, uint64(4)).Return(false, redisErr)

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		err := useCase.DeletePerson(ctx, 4)

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)

		mockRepo.AssertNotCalled(t, "GetByID")
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("should reject a zero id", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		err := useCase.DeletePerson(ctx, 0)

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidPersonID)

		mockRegistry.AssertNotCalled(t, "IsLocked")
	})
}
