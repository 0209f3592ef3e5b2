package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PersonRepository implements the persistence.PersonRepository interface using GORM
type PersonRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPersonRepository creates a new PersonRepository instance
func NewPersonRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PersonRepository {
	return &PersonRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a person model to an entity
func modelToEntity(personModel *model.Person) *entity.Person {
	return &entity.Person{
		ID:        personModel.ID,
		Name:      personModel.Name,
		Surname:   personModel.Surname,
		Birth:     personModel.Birth,
		Points:    personModel.Points,
		CreatedAt: personModel.CreatedAt,
		UpdatedAt: personModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *PersonRepository) handleDatabaseError(operation string, err error, personID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Person not found", map[string]any{
			"person_id": personID,
			"operation": operation,
		})
		return errs.ErrPersonNotFound
	}

	r.logger.Error("Database error", map[string]any{
		"person_id": personID,
		"operation": operation,
		"error":     err.Error(),
	})
	return errs.NewStoreError("postgres", operation, err)
}

// Create inserts a new person and assigns its ID
func (r *PersonRepository) Create(ctx context.Context, person *entity.Person) error {
	personModel := model.Person{
		Name:      person.Name,
		Surname:   person.Surname,
		Birth:     person.Birth,
		Points:    person.Points,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&personModel)
	if result.Error != nil {
		return r.handleDatabaseError("create", result.Error, 0)
	}

	person.ID = personModel.ID

	r.logger.Debug("Person row inserted", map[string]any{
		"person_id": person.ID,
	})
	return nil
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(ctx context.Context, id uint64) (*entity.Person, error) {
	var personModel model.Person
	result := r.db.WithContext(ctx).First(&personModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getByID", result.Error, id)
	}

	return modelToEntity(&personModel), nil
}

// List returns all persons ordered by id
func (r *PersonRepository) List(ctx context.Context) ([]*entity.Person, error) {
	var personModels []model.Person
	result := r.db.WithContext(ctx).Order("id").Find(&personModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("list", result.Error, 0)
	}

	persons := make([]*entity.Person, 0, len(personModels))
	for i := range personModels {
		persons = append(persons, modelToEntity(&personModels[i]))
	}
	return persons, nil
}

// Update overwrites the mutable columns of an existing person
func (r *PersonRepository) Update(ctx context.Context, person *entity.Person) error {
	result := r.db.WithContext(ctx).Model(&model.Person{}).
		Where("id = ?", person.ID).
		Updates(map[string]any{
			"name":       person.Name,
			"surname":    person.Surname,
			"birth":      person.Birth,
			"points":     person.Points,
			"updated_at": person.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("update", result.Error, person.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Person not found during update", map[string]any{
			"person_id": person.ID,
		})
		return errs.ErrPersonNotFound
	}

	return nil
}

// UpdatePoints writes only the points column. Each call commits on its own
// so the maintenance sweep can fail per-record.
func (r *PersonRepository) UpdatePoints(ctx context.Context, id uint64, points int64) error {
	result := r.db.WithContext(ctx).Model(&model.Person{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"points":     points,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updatePoints", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPersonNotFound
	}

	return nil
}

// Delete removes a person by ID
func (r *PersonRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Person{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("delete", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Person not found during delete", map[string]any{
			"person_id": id,
		})
		return errs.ErrPersonNotFound
	}

	return nil
}
