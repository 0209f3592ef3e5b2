package person

import (
	"context"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
	lockport "github.com/amirhossein-jamali/people-registry/internal/domain/port/lock"
	"github.com/amirhossein-jamali/people-registry/internal/domain/port/persistence"
)

// PersonUseCase orchestrates the person repository and the lock registry to
// implement create/read/update/delete with post-creation locking semantics
type PersonUseCase struct {
	personRepo   persistence.PersonRepository
	lockRegistry lockport.Registry
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPersonUseCase creates a new PersonUseCase
func NewPersonUseCase(
	personRepo persistence.PersonRepository,
	lockRegistry lockport.Registry,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PersonUseCase {
	return &PersonUseCase{
		personRepo:   personRepo,
		lockRegistry: lockRegistry,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetPerson retrieves a person by ID. Lock state never affects reads.
func (u *PersonUseCase) GetPerson(ctx context.Context, id uint64) (*entity.Person, error) {
	if id == 0 {
		return nil, errs.ErrInvalidPersonID
	}

	person, err := u.personRepo.GetByID(ctx, id)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			u.logger.Error("Failed to get person", map[string]any{
				"personId": id,
				"error":    err.Error(),
			})
		}
		return nil, err
	}
	return person, nil
}

// ListPersons returns all persons. An empty slice is a normal outcome, not
// an error.
func (u *PersonUseCase) ListPersons(ctx context.Context) ([]*entity.Person, error) {
	persons, err := u.personRepo.List(ctx)
	if err != nil {
		u.logger.Error("Failed to list persons", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return persons, nil
}
