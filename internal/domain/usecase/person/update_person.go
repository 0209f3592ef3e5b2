package person

import (
	"context"

	"github.com/amirhossein-jamali/people-registry/internal/domain/entity"
	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	"github.com/amirhossein-jamali/people-registry/internal/domain/port/usecase"
)

// UpdatePerson overwrites a person's fields if the record exists and is not
// inside its protection window.
//
// The check order is: existence, then lock, then write. Note this is the
// mirror image of DeletePerson, which consults the lock registry before the
// store. The asymmetry is part of the observed contract and is kept as-is.
func (u *PersonUseCase) UpdatePerson(ctx context.Context, id uint64, input usecase.PersonInput) (*entity.Person, error) {
	if id == 0 {
		return nil, errs.ErrInvalidPersonID
	}

	person, err := u.personRepo.GetByID(ctx, id)
	if err != nil {
		if errs.IsNotFoundError(err) {
			u.logger.Info("Nothing to update", map[string]any{
				"personId": id,
			})
		}
		return nil, err
	}

	locked, err := u.lockRegistry.IsLocked(ctx, id)
	if err != nil {
		u.logger.Error("Failed to check lock state", map[string]any{
			"personId": id,
			"error":    err.Error(),
		})
		return nil, err
	}
	if locked {
		u.logger.Info("Update rejected, person still locked", map[string]any{
			"personId": id,
		})
		return nil, errs.NewLockError(id)
	}

	if err := person.ApplyUpdate(input.Name, input.Surname, input.Birth, input.Points, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.personRepo.Update(ctx, person); err != nil {
		u.logger.Error("Failed to update person", map[string]any{
			"personId": id,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Person updated", map[string]any{
		"personId": id,
	})

	return person, nil
}
