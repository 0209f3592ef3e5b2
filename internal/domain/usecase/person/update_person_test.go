package person

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	"github.com/amirhossein-jamali/people-registry/internal/domain/port/usecase"
)

func existingPerson(id uint64) *entity.Person {
	created := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	return &entity.Person{
		ID:        id,
		Name:      "Grace",
		Surname:   "Hopper",
		Birth:     "1906-12-09",
		Points:    10,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestPersonUseCase_UpdatePerson(t *testing.T) {
	input := usecase.PersonInput{
		Name:    "Grace",
		Surname: "Hopper",
		Birth:   "1906-12-09",
		Points:  42,
	}

	t.Run("should update an existing unlocked person", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		mockRepo.On("GetByID", ctx, uint64(3)).Return(existingPerson(3), nil)
		mockRegistry.On("IsLocked", ctx, uint64(3)).Return(false, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*entity.Person")).Return(nil)

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		updated, err := useCase.UpdatePerson(ctx, 3, input)

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, int64(42), updated.Points)

		mockRepo.AssertExpectations(t)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("should report nothing to update without consulting the registry", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		mockRepo.On("GetByID", ctx, uint64(99)).Return(nil, errs.ErrPersonNotFound)

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		updated, err := useCase.UpdatePerson(ctx, 99, input)

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrPersonNotFound)

		// Existence is checked before lock state on updates
		mockRegistry.AssertNotCalled(t, "IsLocked")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("should reject update while the person is locked", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		mockRepo.On("GetByID", ctx, uint64(3)).Return(existingPerson(3), nil)
		mockRegistry.On("IsLocked", ctx, uint64(3)).Return(true, nil)

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		updated, err := useCase.UpdatePerson(ctx, 3, input)

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrPersonLocked)

		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("should fail closed when the registry is unreachable", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		mockRepo.On("GetByID", ctx, uint64(3)).Return(existingPerson(3), nil)
		redisErr := errs.NewStoreError("redis", "isLocked", assert.AnError)
		mockRegistry.On("IsLocked", ctx, uint64(3)).Return(false, redisErr)

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		updated, err := useCase.UpdatePerson(ctx, 3, input)

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)

		// An unreachable registry must never be treated as unlocked
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("should reject a zero id", func(t *testing.T) {
		ctx := context.Background()
		mockRepo, mockRegistry, mockTimeProvider, mockLogger := newTestMocks()

		useCase := NewPersonUseCase(mockRepo, mockRegistry, mockTimeProvider, mockLogger)

		updated, err := useCase.UpdatePerson(ctx, 0, input)

		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrInvalidPersonID)

		mockRepo.AssertNotCalled(t, "GetByID")
	})
}
